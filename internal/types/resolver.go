// The package used for translating interface description types into C++ types.
package types

import "strings"

const (
	// The C++ type that selects the string call path.
	StringType = "const char*"
	// The return type that discards the call result.
	VoidType = "void"
	// The return type whose result is reinterpreted instead of converted.
	OpaquePointerType = "void*"
	// Suffix shared by every C++ pointer type.
	PointerSuffix = "*"
)

// The map of interface description types to C++ types
var typeAliases map[string]string = map[string]string{
	"cells":           "const char*",
	"colour":          "Colour",
	"colouralpha":     "ColourAlpha",
	"findtext":        "void*",
	"findtextfull":    "TextToFindFull*",
	"formatrange":     "void*",
	"formatrangefull": "RangeToFormatFull*",
	"keymod":          "int",
	"line":            "Line",
	"pointer":         "void*",
	"position":        "Position",
	"string":          "const char*",
	"stringresult":    "char*",
	"textrange":       "void*",
	"textrangefull":   "TextRangeFull*",
}

// C++ types passed through without a cast
var basicTypes []string = []string{
	"bool",
	"char*",
	"Colour",
	"ColourAlpha",
	"const char*",
	"int",
	"intptr_t",
	"Line",
	"Position",
	"void",
	"void*",
}

// Basic types that still need a cast on return, the underlying call always yields intptr_t.
var narrowedReturnTypes []string = []string{
	"int",
	"Colour",
	"ColourAlpha",
}

// Table is the immutable type vocabulary shared by the reader and the generator.
type Table struct {
	aliases  map[string]string
	basic    map[string]struct{}
	narrowed map[string]struct{}
}

// Returns the built-in table.
func Default() *Table {
	return NewTable(nil, nil)
}

// Creates a table from the built-in entries extended with the given aliases and basic types.
// Extra aliases replace built-in ones with the same name.
func NewTable(extraAliases map[string]string, extraBasic []string) *Table {
	table := &Table{
		aliases:  make(map[string]string, len(typeAliases)+len(extraAliases)),
		basic:    make(map[string]struct{}, len(basicTypes)+len(extraBasic)),
		narrowed: make(map[string]struct{}, len(narrowedReturnTypes)),
	}

	for name, hostType := range typeAliases {
		table.aliases[name] = hostType
	}
	for name, hostType := range extraAliases {
		table.aliases[name] = hostType
	}
	for _, hostType := range basicTypes {
		table.basic[hostType] = struct{}{}
	}
	for _, hostType := range extraBasic {
		table.basic[hostType] = struct{}{}
	}
	for _, hostType := range narrowedReturnTypes {
		table.narrowed[hostType] = struct{}{}
	}

	return table
}

// Resolve maps a description type token to its C++ type.
// Unknown tokens are returned unchanged, so `int` or `bool` need no alias.
func (table *Table) Resolve(token string) string {
	if token == "" {
		return ""
	}

	if hostType, found := table.aliases[token]; found {
		return hostType
	}

	return token
}

func (table *Table) IsBasic(hostType string) bool {
	_, found := table.basic[hostType]
	return found
}

func (table *Table) NarrowsOnReturn(hostType string) bool {
	_, found := table.narrowed[hostType]
	return found
}

func (table *Table) IsPointer(hostType string) bool {
	return strings.HasSuffix(hostType, PointerSuffix)
}

func (table *Table) IsString(hostType string) bool {
	return hostType == StringType
}

func (table *Table) IsVoid(hostType string) bool {
	return hostType == VoidType
}

func (table *Table) IsOpaquePointer(hostType string) bool {
	return hostType == OpaquePointerType
}

// Aliases returns a copy of the alias map.
func (table *Table) Aliases() map[string]string {
	aliases := make(map[string]string, len(table.aliases))
	for name, hostType := range table.aliases {
		aliases[name] = hostType
	}
	return aliases
}
