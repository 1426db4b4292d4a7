package metadata

import "fmt"

// Feature kind of a declaration line.
type Kind string

const (
	KindFunction Kind = "fun"
	KindGetter   Kind = "get"
	KindSetter   Kind = "set"
)

// Index of the argument slots in Record.Params.
const (
	WordParam = 0
	LongParam = 1
)

// Record is one declared member of the interface with its types already resolved.
type Record struct {
	Kind       Kind
	ReturnType string
	Name       string
	// Message number as written after `=`, e.g. "2153".
	Value  string
	Params [2]Parameter
	// 1-based line in the description.
	Line int
}

// Parameter is an argument slot. Absent slots have an empty type and name.
type Parameter struct {
	Type string
	Name string
}

func (param Parameter) IsEmpty() bool {
	return param.Type == ""
}

func (record Record) Word() Parameter {
	return record.Params[WordParam]
}

func (record Record) Long() Parameter {
	return record.Params[LongParam]
}

// ParseError reports a recognised declaration line that does not follow the grammar.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", err.Line, err.Reason, err.Text)
}
