package generation

import (
	"bytes"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dave/jennifer/jen"

	"ifacegen/internal/metadata"
)

const messageTypeName = "Message"

// Messages builds a Go file declaring a Message constant for every record, named after the member.
func Messages(packageName string, records []metadata.Record) (*jen.File, error) {
	sorted := make([]metadata.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	values := make([]uint64, len(sorted))
	for i, record := range sorted {
		if i > 0 && sorted[i-1].Name == record.Name {
			return nil, errors.Newf("line %d: duplicate member %s", record.Line, record.Name)
		}

		value, err := strconv.ParseUint(record.Value, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid message value %q for %s", record.Line, record.Value, record.Name)
		}
		values[i] = value
	}

	file := jen.NewFile(packageName)
	file.HeaderComment("Code generated by ifacegen. DO NOT EDIT.")

	file.Comment("Message is the numeric code of an editor operation.")
	file.Type().Id(messageTypeName).Uint32()

	file.Const().DefsFunc(func(g *jen.Group) {
		for i, record := range sorted {
			g.Id(constName(record)).Id(messageTypeName).Op("=").Lit(int(values[i]))
		}
	})

	file.Var().Id("messageNames").Op("=").Map(jen.Id(messageTypeName)).String().Values(jen.DictFunc(func(d jen.Dict) {
		for _, record := range sorted {
			d[jen.Id(constName(record))] = jen.Lit(record.Name)
		}
	}))

	file.Func().Params(jen.Id("m").Id(messageTypeName)).Id("String").Params().String().Block(
		jen.If(jen.List(jen.Id("name"), jen.Id("ok")).Op(":=").Id("messageNames").Index(jen.Id("m")), jen.Id("ok")).Block(
			jen.Return(jen.Id("name")),
		),
		jen.Return(jen.Qual("strconv", "FormatUint").Call(jen.Uint64().Call(jen.Id("m")), jen.Lit(10))),
	)

	return file, nil
}

// RenderMessages renders the result of Messages as formatted Go source.
func RenderMessages(packageName string, records []metadata.Record) (string, error) {
	file, err := Messages(packageName, records)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return "", errors.Wrap(err, "failed to render message bindings")
	}

	return buf.String(), nil
}

func constName(record metadata.Record) string {
	return messageTypeName + record.Name
}
