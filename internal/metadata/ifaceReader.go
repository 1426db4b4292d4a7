// The package used for reading and describing interface description files.
package metadata

import (
	"strings"

	"go.uber.org/zap"

	"ifacegen/internal/types"
)

// Line terminator of Scintilla.iface.
const CRLF string = "\r\n"

// Category line that ends the readable part of the description.
const deprecatedMarker string = "cat Deprecated"

var features map[Kind]bool = map[Kind]bool{
	KindFunction: true,
	KindGetter:   true,
	KindSetter:   true,
}

type Reader struct {
	types      *types.Table
	lineEnding string
	logger     *zap.SugaredLogger
}

// Creates a reader resolving types through given table.
// An empty line ending means CRLF.
func NewReader(table *types.Table, lineEnding string, logger *zap.SugaredLogger) *Reader {
	if lineEnding == "" {
		lineEnding = CRLF
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Reader{
		types:      table,
		lineEnding: lineEnding,
		logger:     logger,
	}
}

// Read extracts one record per fun/get/set line, in file order.
// Lines after the deprecated category are never looked at.
func (reader *Reader) Read(content string) ([]Record, error) {
	records := make([]Record, 0)
	lines := strings.Split(content, reader.lineEnding)

	for idx, line := range lines {
		if strings.HasPrefix(line, deprecatedMarker) {
			reader.logger.Debugw("stopped at deprecated category", "line", idx+1, "skipped", len(lines)-idx)
			break
		}

		record, found, err := reader.readLine(line, idx+1)
		if err != nil {
			return nil, err
		}
		if found {
			records = append(records, record)
		}
	}

	reader.logger.Debugw("read interface description", "lines", len(lines), "records", len(records))
	return records, nil
}

func (reader *Reader) readLine(line string, lineNumber int) (Record, bool, error) {
	header, rest, found := strings.Cut(line, "=")
	if !found {
		return Record{}, false, nil
	}

	tokens := strings.Split(header, " ")
	kind := Kind(tokens[0])
	if !features[kind] {
		return Record{}, false, nil
	}

	fail := func(reason string) (Record, bool, error) {
		return Record{}, false, &ParseError{Line: lineNumber, Text: line, Reason: reason}
	}

	if len(tokens) < 3 || tokens[1] == "" || tokens[2] == "" {
		return fail("expected return type and name before '='")
	}

	start := strings.Index(line, "(")
	end := strings.Index(line, ")")
	if start < 0 || end < start {
		return fail("expected parenthesised argument list")
	}

	args := strings.Split(line[start+1:end], ",")
	if len(args) > 2 {
		return fail("more than two argument slots")
	}

	record := Record{
		Kind:       kind,
		ReturnType: reader.types.Resolve(tokens[1]),
		Name:       tokens[2],
		Line:       lineNumber,
	}

	// `rest` starts right after the first '=' which precedes the argument list.
	if valueEnd := strings.Index(rest, "("); valueEnd >= 0 {
		record.Value = strings.TrimSpace(rest[:valueEnd])
	}

	for slot, arg := range args {
		record.Params[slot] = reader.readParam(arg)
	}

	return record, true, nil
}

func (reader *Reader) readParam(arg string) Parameter {
	typeToken, name, _ := strings.Cut(strings.TrimSpace(arg), " ")
	return Parameter{
		Type: reader.types.Resolve(typeToken),
		Name: strings.TrimSpace(name),
	}
}
