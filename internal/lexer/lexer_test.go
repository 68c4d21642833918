package lexer_test

import (
	"strings"
	"testing"

	"github.com/KimNorgaard/go-yso/errors"
	"github.com/KimNorgaard/go-yso/internal/lexer"
	"github.com/KimNorgaard/go-yso/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := `name: Alice   ; who
# Top-level comment

[Pet]
species: cat
  ; indented comment
quoted: "value with : colon"
multi: """
first line
  second: [line] ; kept
"""
inline: """abc"""
orphan line
[Pet] trailing: key
`
	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
		expectedValue   string
		expectedLine    int
		expectedColumn  int
	}{
		{token.PAIR, "name", " Alice   ; who", 1, 1},
		{token.COMMENT, "Top-level comment", "# Top-level comment", 2, 1},
		{token.SECTION, "Pet", "", 4, 1},
		{token.PAIR, "species", " cat", 5, 1},
		{token.COMMENT, "indented comment", "; indented comment", 6, 3},
		{token.PAIR, "quoted", ` "value with : colon"`, 7, 1},
		{token.BLOCK, "multi", "first line\n  second: [line] ; kept", 8, 1},
		{token.PAIR, "inline", ` """abc"""`, 12, 1},
		{token.ORPHAN, "orphan line", "", 13, 1},
		{token.PAIR, "[Pet] trailing", " key", 14, 1},
		{token.EOF, "", "", 14, 0},
	}

	l := lexer.New(strings.NewReader(input))
	for i, tt := range expectedTokens {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "tests[%d] - wrong type", i)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "tests[%d] - wrong literal", i)
		require.Equal(t, tt.expectedValue, tok.Value, "tests[%d] - wrong value", i)
		require.Equal(t, tt.expectedLine, tok.Line, "tests[%d] - wrong line", i)
		require.Equal(t, tt.expectedColumn, tok.Column, "tests[%d] - wrong column", i)
	}
	require.NoError(t, l.Err())
}

func TestNextToken_LineEndings(t *testing.T) {
	l := lexer.New(strings.NewReader("\uFEFFa: 1\r\nb: \"\"\"\r\nx\r\ny\r\n\"\"\"\r\n"))

	tok := l.NextToken()
	require.Equal(t, token.PAIR, tok.Type)
	require.Equal(t, "a", tok.Literal)
	require.Equal(t, " 1", tok.Value)

	tok = l.NextToken()
	require.Equal(t, token.BLOCK, tok.Type)
	require.Equal(t, "x\ny", tok.Value)

	require.Equal(t, token.EOF, l.NextToken().Type)
}

func TestNextToken_Block(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"own lines", "k: \"\"\"\nA\nB\n\"\"\"", "A\nB"},
		{"text on delimiter lines", "k: \"\"\"A\nB\nC\"\"\" ignored", "A\nB\nC"},
		{"trailing empty line", "k: \"\"\"\nA\n\n\"\"\"", "A\n"},
		{"leading empty line", "k: \"\"\"\n\nA\n\"\"\"", "\nA"},
		{"whitespace kept", "k: \"\"\"\n  A  \n\tB\n\"\"\"", "  A  \n\tB"},
		{"escaped delimiter", "k: \"\"\"\na \\\"\"\" b\n\"\"\"", `a \""" b`},
		{"blank lines only", "k: \"\"\"\n\n\n\"\"\"", "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New(strings.NewReader(tt.input))
			tok := l.NextToken()
			require.Equal(t, token.BLOCK, tok.Type)
			require.Equal(t, "k", tok.Literal)
			require.Equal(t, tt.expected, tok.Value)
			require.Equal(t, token.EOF, l.NextToken().Type)
		})
	}
}

func TestNextToken_Illegal(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedKind errors.Kind
		expectedLine int
		expectedCol  int
	}{
		{"unterminated block", "a: 1\nk: \"\"\"\nline\n[not a section]\n", errors.UnterminatedBlock, 2, 4},
		{"unterminated block at eof", "k:   \"\"\"", errors.UnterminatedBlock, 1, 6},
		{"missing bracket", "[Pet\nk: v\n", errors.MalformedHeader, 1, 1},
		{"missing bracket with colon", "  [Pet: x\n", errors.MalformedHeader, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := lexer.New(strings.NewReader(tt.input))
			var tok token.Token
			for tok = l.NextToken(); tok.Type != token.ILLEGAL && tok.Type != token.EOF; tok = l.NextToken() {
			}
			require.Equal(t, token.ILLEGAL, tok.Type)
			require.Equal(t, tt.expectedKind, tok.Kind)
			require.Equal(t, tt.expectedLine, tok.Line)
			require.Equal(t, tt.expectedCol, tok.Column)
			require.NotEmpty(t, tok.Literal)
		})
	}
}

func TestNextToken_Sections(t *testing.T) {
	tests := []struct {
		input           string
		expected        string
		expectedComment string
	}{
		{"[Pet]", "Pet", ""},
		{"[ Pet ]", "Pet", ""},
		{"  [Pet]  ; comment", "Pet", "; comment"},
		{"[Pet]# comment", "Pet", "# comment"},
		{`[a\]b]`, `a\]b`, ""},
		{"[a b]", "a b", ""},
		{"[]", "", ""},
		{"[  ] ; global again", "", "; global again"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := lexer.New(strings.NewReader(tt.input)).NextToken()
			require.Equal(t, token.SECTION, tok.Type)
			require.Equal(t, tt.expected, tok.Literal)
			require.Equal(t, tt.expectedComment, tok.Comment)
		})
	}
}

func TestNextToken_Spacing(t *testing.T) {
	l := lexer.New(strings.NewReader("\na: 1\nb: 2\n\n  \t\n; c\nk: \"\"\"\nx\n\n\"\"\"  ; after\n"))

	tok := l.NextToken()
	require.Equal(t, "a", tok.Literal)
	require.True(t, tok.Spaced)

	tok = l.NextToken()
	require.Equal(t, "b", tok.Literal)
	require.False(t, tok.Spaced)

	tok = l.NextToken()
	require.Equal(t, token.COMMENT, tok.Type)
	require.True(t, tok.Spaced, "whitespace-only lines count as blank")

	tok = l.NextToken()
	require.Equal(t, token.BLOCK, tok.Type)
	require.False(t, tok.Spaced)
	require.Equal(t, "x\n", tok.Value)
	require.Equal(t, "; after", tok.Comment)

	require.Equal(t, token.EOF, l.NextToken().Type)
}
