package generation

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"ifacegen/internal/metadata"
	"ifacegen/internal/types"
)

// Symbolic message namespace used by every forwarding call.
const messageScope = "Message::"

type Generator struct {
	Types      *types.Table
	LineEnding string
	Indent     string
	logger     *zap.SugaredLogger
}

func NewGenerator(table *types.Table, lineEnding string, indent string, logger *zap.SugaredLogger) Generator {
	if lineEnding == "" {
		lineEnding = metadata.CRLF
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return Generator{
		Types:      table,
		LineEnding: lineEnding,
		Indent:     indent,
		logger:     logger,
	}
}

// Body renders every record as one forwarding method and returns them sorted, joined by the line ending.
func (generator *Generator) Body(records []metadata.Record) string {
	methods := make([]string, 0, len(records))
	seen := make(map[string]int, len(records))

	for _, record := range records {
		if previous, found := seen[record.Name]; found {
			generator.logger.Warnw("duplicate member", "name", record.Name, "line", record.Line, "previous", previous)
		}
		seen[record.Name] = record.Line

		methods = append(methods, generator.Method(record))
	}

	sort.Strings(methods)
	generator.logger.Debugw("generated forwarding methods", "count", len(methods))

	return strings.Join(methods, generator.LineEnding)
}

// Method renders `<ret> <name>(<params>) { <statement> }` for one record.
func (generator *Generator) Method(record metadata.Record) string {
	plan := NewPlan(generator.Types, record)

	var sb strings.Builder
	sb.WriteString(generator.Indent)
	fmt.Fprintf(&sb, "%s %s(", record.ReturnType, record.Name)
	sb.WriteString(signature(record))
	sb.WriteString(") { ")
	sb.WriteString(statement(plan))
	sb.WriteString(" }")

	return sb.String()
}

func signature(record metadata.Record) string {
	params := make([]string, 0, 2)
	for _, param := range record.Params {
		if !param.IsEmpty() {
			params = append(params, fmt.Sprintf("%s %s", param.Type, param.Name))
		}
	}
	return strings.Join(params, ", ")
}

func formatArg(conversion ArgConversion, name string, slotType string) string {
	switch conversion {
	case ArgZero:
		return "0"
	case ArgReinterpret:
		return fmt.Sprintf("reinterpret_cast<%s>(%s)", slotType, name)
	case ArgStatic:
		return fmt.Sprintf("static_cast<%s>(%s)", slotType, name)
	default:
		return name
	}
}

// The long argument of string and pointer calls keeps its own type.
func rawArg(name string) string {
	if name == "" {
		return "0"
	}
	return name
}

func call(plan Plan) string {
	record := plan.Record
	message := messageScope + record.Name
	wp := formatArg(plan.Args[metadata.WordParam], record.Word().Name, WordSlotType)

	switch plan.Shape {
	case CallString:
		return fmt.Sprintf("CallString(%s, %s, %s)", message, wp, rawArg(record.Long().Name))
	case CallPointer:
		return fmt.Sprintf("CallPointer(%s, %s, %s)", message, wp, rawArg(record.Long().Name))
	case CallDual:
		lp := formatArg(plan.Args[metadata.LongParam], record.Long().Name, LongSlotType)
		return fmt.Sprintf("Call(%s, %s, %s)", message, wp, lp)
	case CallSingle:
		return fmt.Sprintf("Call(%s, %s)", message, wp)
	default:
		return fmt.Sprintf("Call(%s)", message)
	}
}

func statement(plan Plan) string {
	expression := call(plan)

	switch plan.Return {
	case ReturnReinterpret:
		return fmt.Sprintf("return reinterpret_cast<%s>(%s);", plan.Record.ReturnType, expression)
	case ReturnStatic:
		return fmt.Sprintf("return static_cast<%s>(%s);", plan.Record.ReturnType, expression)
	case ReturnDiscard:
		return expression + ";"
	default:
		return fmt.Sprintf("return %s;", expression)
	}
}
