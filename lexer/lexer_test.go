package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, source string) []TokenType {
	t.Helper()
	toks, err := New(source).Tokenize()
	require.NoError(t, err)
	types := make([]TokenType, 0, len(toks))
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			continue
		}
		types = append(types, tok.Type)
	}
	return types
}

func TestNumberDotMethodDisambiguation(t *testing.T) {
	types := tokenTypes(t, "5.method()")
	assert.Equal(t, []TokenType{INTEGER, DOT, IDENT, LPAREN, RPAREN, EOF}, types)
}

func TestFloatLiteral(t *testing.T) {
	toks, err := New("3.14").Tokenize()
	require.NoError(t, err)
	require.Equal(t, FLOAT, toks[0].Type)
	assert.InDelta(t, 3.14, toks[0].FloatValue, 1e-9)
}

func TestKeywordsCaseInsensitive(t *testing.T) {
	assert.Equal(t, []TokenType{IF, IDENT, LBRACE, RBRACE, EOF}, tokenTypes(t, "IF x {}"))
	assert.Equal(t, []TokenType{WHILE, TRUE, LBRACE, RBRACE, EOF}, tokenTypes(t, "While True {}"))
}

func TestTwoCharOperatorsPreferredOverSingle(t *testing.T) {
	assert.Equal(t, []TokenType{EQ, NEQ, LTE, GTE, ARROW, FATARR, EOF}, tokenTypes(t, "== != <= >= -> =>"))
}

func TestBangIsNotSynonym(t *testing.T) {
	assert.Equal(t, []TokenType{BANG, IDENT, EOF}, tokenTypes(t, "!x"))
	assert.Equal(t, []TokenType{NEQ, EOF}, tokenTypes(t, "!="))
}

func TestStringEscapes(t *testing.T) {
	toks, err := New(`"a\nb\tc\\d\"e\qf"`).Tokenize()
	require.NoError(t, err)
	require.Equal(t, STRING, toks[0].Type)
	assert.Equal(t, "a\nb\tc\\d\"e\\qf", toks[0].StrValue)
}

func TestUnterminatedString(t *testing.T) {
	_, err := New(`"abc`).Tokenize()
	require.Error(t, err)
}

func TestInterpolatedStringFragments(t *testing.T) {
	toks, err := New(`f"hi {name}, you are {age + 1}!"`).Tokenize()
	require.NoError(t, err)
	require.Equal(t, FSTRING, toks[0].Type)
	frags := toks[0].Fragments
	require.Len(t, frags, 5)
	assert.Equal(t, InterpFragment{IsExpr: false, Text: "hi "}, frags[0])
	assert.Equal(t, InterpFragment{IsExpr: true, Text: "name"}, frags[1])
	assert.Equal(t, InterpFragment{IsExpr: false, Text: ", you are "}, frags[2])
	assert.Equal(t, InterpFragment{IsExpr: true, Text: "age + 1"}, frags[3])
	assert.Equal(t, InterpFragment{IsExpr: false, Text: "!"}, frags[4])
}

func TestInterpolationNestedBracesAndQuotes(t *testing.T) {
	toks, err := New(`f"{ {"k": 1}.keys() }"`).Tokenize()
	require.NoError(t, err)
	require.Equal(t, FSTRING, toks[0].Type)
	require.Len(t, toks[0].Fragments, 1)
	assert.Equal(t, ` {"k": 1}.keys() `, toks[0].Fragments[0].Text)
}

func TestLineComment(t *testing.T) {
	assert.Equal(t, []TokenType{SET, IDENT, ASSIGN, INTEGER, EOF}, tokenTypes(t, "set x = 1 -- comment here"))
}

func TestNewlineTokensPreserved(t *testing.T) {
	toks, err := New("set x = 1\nshow x").Tokenize()
	require.NoError(t, err)
	var hasNewline bool
	for _, tok := range toks {
		if tok.Type == NEWLINE {
			hasNewline = true
		}
	}
	assert.True(t, hasNewline)
}

func TestLexErrorCarriesPosition(t *testing.T) {
	_, err := New("set x = @").Tokenize()
	require.Error(t, err)
	lexErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, 1, lexErr.Line)
}
