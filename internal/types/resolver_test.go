package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	table := Default()

	tests := []struct {
		token    string
		expected string
	}{
		{"position", "Position"},
		{"string", "const char*"},
		{"stringresult", "char*"},
		{"textrange", "void*"},
		{"textrangefull", "TextRangeFull*"},
		{"keymod", "int"},
		{"int", "int"},
		{"bool", "bool"},
		{"Position", "Position"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, table.Resolve(tt.token))
		})
	}
}

func TestIsBasic(t *testing.T) {
	table := Default()

	for _, hostType := range []string{"bool", "char*", "Colour", "ColourAlpha", "const char*", "int", "intptr_t", "Line", "Position", "void", "void*"} {
		assert.True(t, table.IsBasic(hostType), hostType)
	}
	for _, hostType := range []string{"TextRangeFull*", "FoldLevel", "uintptr_t", ""} {
		assert.False(t, table.IsBasic(hostType), hostType)
	}
}

func TestNarrowsOnReturn(t *testing.T) {
	table := Default()

	assert.True(t, table.NarrowsOnReturn("int"))
	assert.True(t, table.NarrowsOnReturn("Colour"))
	assert.True(t, table.NarrowsOnReturn("ColourAlpha"))
	assert.False(t, table.NarrowsOnReturn("Position"))
	assert.False(t, table.NarrowsOnReturn("bool"))
}

func TestPredicates(t *testing.T) {
	table := Default()

	assert.True(t, table.IsPointer("void*"))
	assert.True(t, table.IsPointer("TextRangeFull*"))
	assert.False(t, table.IsPointer("Position"))
	assert.True(t, table.IsString("const char*"))
	assert.False(t, table.IsString("char*"))
	assert.True(t, table.IsVoid("void"))
	assert.False(t, table.IsVoid("void*"))
	assert.True(t, table.IsOpaquePointer("void*"))
	assert.False(t, table.IsOpaquePointer("char*"))
}

func TestNewTableExtends(t *testing.T) {
	table := NewTable(map[string]string{"sizet": "size_t", "line": "Sci_Line"}, []string{"size_t"})

	assert.Equal(t, "size_t", table.Resolve("sizet"))
	assert.Equal(t, "Sci_Line", table.Resolve("line"))
	assert.True(t, table.IsBasic("size_t"))
	assert.Equal(t, "Position", table.Resolve("position"))

	// built-ins stay untouched for other tables
	assert.Equal(t, "Line", Default().Resolve("line"))
}

func TestAliasesIsCopy(t *testing.T) {
	table := Default()
	aliases := table.Aliases()
	aliases["position"] = "broken"

	assert.Equal(t, "Position", table.Resolve("position"))
}
