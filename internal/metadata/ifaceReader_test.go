package metadata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ifacegen/internal/types"
)

func iface(lines ...string) string {
	return strings.Join(lines, CRLF)
}

func newTestReader() *Reader {
	return NewReader(types.Default(), "", nil)
}

func TestReadRecognisedKinds(t *testing.T) {
	content := iface(
		"## comment line",
		"cat Basics",
		"val INVALID_POSITION=-1",
		"fun void AddText=2001(position length, string text)",
		"get position GetLength=2006(,)",
		"set void SetCurrentPos=2141(position caret,)",
		"evt void StyleNeeded=2000(int position)",
		"enu WhiteSpace=SCWS_",
		"ali SCWS_INVISIBLE=INVISIBLE",
		"",
	)

	records, err := newTestReader().Read(content)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Record{
		Kind:       KindFunction,
		ReturnType: "void",
		Name:       "AddText",
		Value:      "2001",
		Params: [2]Parameter{
			{Type: "Position", Name: "length"},
			{Type: "const char*", Name: "text"},
		},
		Line: 4,
	}, records[0])

	assert.Equal(t, KindGetter, records[1].Kind)
	assert.Equal(t, "Position", records[1].ReturnType)
	assert.True(t, records[1].Word().IsEmpty())
	assert.True(t, records[1].Long().IsEmpty())

	assert.Equal(t, KindSetter, records[2].Kind)
	assert.Equal(t, Parameter{Type: "Position", Name: "caret"}, records[2].Word())
	assert.True(t, records[2].Long().IsEmpty())
}

func TestReadStopsAtDeprecated(t *testing.T) {
	content := iface(
		"fun void ClearAll=2004(,)",
		"cat Deprecated",
		"fun void SetStyleBits=2090(int bits,)",
		"cat Basics",
		"fun void Cut=2177(,)",
	)

	records, err := newTestReader().Read(content)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ClearAll", records[0].Name)
}

func TestReadSplitsOnlyOnCRLF(t *testing.T) {
	// a bare LF does not end a line, so both declarations share line 1
	content := "fun void Undo=2176(,)\nfun void Redo=2011(,)"

	records, err := newTestReader().Read(content)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Undo", records[0].Name)
}

func TestReadCustomLineEnding(t *testing.T) {
	reader := NewReader(types.Default(), "\n", nil)

	records, err := reader.Read("fun void Undo=2176(,)\nfun void Redo=2011(,)")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 2, records[1].Line)
}

func TestReadMissingSlotsAreEmpty(t *testing.T) {
	records, err := newTestReader().Read("fun void Stop=3000()")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, [2]Parameter{}, records[0].Params)

	records, err = newTestReader().Read("fun int Count=3001(int n)")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Parameter{Type: "int", Name: "n"}, records[0].Word())
	assert.True(t, records[0].Long().IsEmpty())
}

func TestReadUnknownTypesPassThrough(t *testing.T) {
	records, err := newTestReader().Read("set void SetFoldLevel=2222(line line, FoldLevel level)")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, Parameter{Type: "Line", Name: "line"}, records[0].Word())
	assert.Equal(t, Parameter{Type: "FoldLevel", Name: "level"}, records[0].Long())
}

func TestReadParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{"missing name", "fun void=2001(,)", "expected return type and name before '='"},
		{"missing parentheses", "fun void AddText=2001", "expected parenthesised argument list"},
		{"reversed parentheses", "fun void AddText=2001)(", "expected parenthesised argument list"},
		{"too many slots", "fun void AddText=2001(int a, int b, int c)", "more than two argument slots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := iface("cat Basics", tt.line)

			records, err := newTestReader().Read(content)
			require.Error(t, err)
			assert.Nil(t, records)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, 2, parseErr.Line)
			assert.Equal(t, tt.line, parseErr.Text)
			assert.Equal(t, tt.reason, parseErr.Reason)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestReadIgnoresMalformedUnrecognisedLines(t *testing.T) {
	records, err := newTestReader().Read(iface("lex Python=SCLEX_PYTHON python", "evt void Broken=1(", "fun"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadLogsDeprecatedGate(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	reader := NewReader(types.Default(), CRLF, zap.New(core).Sugar())

	_, err := reader.Read(iface("fun void ClearAll=2004(,)", "cat Deprecated", "fun void Old=1(,)"))
	require.NoError(t, err)

	gate := logs.FilterMessage("stopped at deprecated category").All()
	require.Len(t, gate, 1)
	assert.Equal(t, int64(2), gate[0].ContextMap()["line"])
}
