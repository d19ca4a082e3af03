package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, source string) *Program {
	t.Helper()
	p := New(source)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors())
	return prog
}

func TestParseSimpleShow(t *testing.T) {
	prog := parseOK(t, "show 1 + 2")
	require.Len(t, prog.Statements, 1)
	show, ok := prog.Statements[0].(*ShowStatement)
	require.True(t, ok)
	bin, ok := show.Expr.(*BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", string(bin.Op))
}

func TestParseForRangeShape(t *testing.T) {
	prog := parseOK(t, "for i in 1 to 10 {\nshow i\n}")
	_, ok := prog.Statements[0].(*LoopRangeStatement)
	assert.True(t, ok)
}

func TestParseForIterateShape(t *testing.T) {
	prog := parseOK(t, "for item in list {\nshow item\n}")
	_, ok := prog.Statements[0].(*ForInStatement)
	assert.True(t, ok)
}

func TestParseForRepeatShape(t *testing.T) {
	prog := parseOK(t, "for 5 {\nshow 1\n}")
	_, ok := prog.Statements[0].(*LoopTimesStatement)
	assert.True(t, ok)
}

func TestParseLambdaVsParenExpression(t *testing.T) {
	prog := parseOK(t, "set f = (x) => x * 2")
	assign := prog.Statements[0].(*Assignment)
	_, ok := assign.Value.(*LambdaExpr)
	assert.True(t, ok)

	prog2 := parseOK(t, "set y = (1 + 2) * 3")
	assign2 := prog2.Statements[0].(*Assignment)
	_, ok = assign2.Value.(*BinaryOp)
	assert.True(t, ok)
}

func TestParseClassWithExtends(t *testing.T) {
	prog := parseOK(t, "class B extends A {\nfunc init(x) {\nset this.x = x\n}\n}")
	cls := prog.Statements[0].(*ClassDeclaration)
	assert.Equal(t, "A", cls.Parent)
	require.Len(t, cls.Methods, 1)
	assert.Equal(t, "init", cls.Methods[0].Name)
}

func TestParseDotPropertyAcceptsKeyword(t *testing.T) {
	prog := parseOK(t, "show obj.class")
	show := prog.Statements[0].(*ShowStatement)
	member, ok := show.Expr.(*MemberAccess)
	require.True(t, ok)
	assert.Equal(t, "class", member.Property)
}

func TestParseInterpolatedString(t *testing.T) {
	prog := parseOK(t, `show f"{b.x},{b.y}"`)
	show := prog.Statements[0].(*ShowStatement)
	interp, ok := show.Expr.(*InterpolatedString)
	require.True(t, ok)
	require.Len(t, interp.Parts, 3)
	_, isLit := interp.Parts[1].(*StringLiteral)
	assert.True(t, isLit)
	assert.Equal(t, ",", interp.Parts[1].(*StringLiteral).Value)
}

func TestParseTryCatchFinally(t *testing.T) {
	prog := parseOK(t, "try {\nthrow 1\n} catch e {\nshow e\n} finally {\nshow 2\n}")
	stmt := prog.Statements[0].(*TryCatchStatement)
	assert.True(t, stmt.HasCatch)
	assert.True(t, stmt.HasFinally)
	assert.Equal(t, "e", stmt.CatchVar)
}

func TestParseDestructureList(t *testing.T) {
	prog := parseOK(t, "set [a, b, c] = [1, 2, 3]")
	d := prog.Statements[0].(*DestructureList)
	assert.Equal(t, []string{"a", "b", "c"}, d.Names)
}
