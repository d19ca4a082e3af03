package eval

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voltlang/volt/objects"
)

func runCapture(source string) (*Evaluator, string, objects.Value) {
	e := New()
	var out bytes.Buffer
	e.Writer = &out
	_, result := e.RunSource(source)
	return e, out.String(), result
}

func TestArithmeticDivisionAlwaysFloats(t *testing.T) {
	_, out, r := runCapture("show 4 / 2\n4 / 2")
	assert.Equal(t, objects.FloatType, r.Type())
	assert.Equal(t, "2\n", out)
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, _, r := runCapture(`show 1 / 0`)
	assert.True(t, objects.IsError(r))
}

func TestStringConcatenationCoercesRight(t *testing.T) {
	_, out, _ := runCapture(`show "n=" + 5`)
	assert.Equal(t, "n=5\n", out)
}

func TestListConcatenationProducesNewList(t *testing.T) {
	_, out, _ := runCapture(`show [1, 2] + [3]`)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestNestedListStringifiesWithoutQuotingStrings(t *testing.T) {
	_, out, _ := runCapture(`show ["a", "b"]`)
	assert.Equal(t, "[a, b]\n", out)
}

func TestFunctionFallthroughWithoutReturnYieldsNull(t *testing.T) {
	_, out, _ := runCapture(`
func noop() {
    set x = 1
}
show noop()
`)
	assert.Equal(t, "null\n", out)
}

func TestFunctionExplicitReturnUnwraps(t *testing.T) {
	_, out, _ := runCapture(`
func add(a, b) {
    return a + b
}
show add(2, 3)
`)
	assert.Equal(t, "5\n", out)
}

func TestDefaultArgumentEvaluatesInCallerEnvironment(t *testing.T) {
	_, out, _ := runCapture(`
set y = 10
func f(x = y) {
    return x
}
set y = 20
show f()
`)
	assert.Equal(t, "20\n", out)
}

func TestClassInitAndMethodDispatch(t *testing.T) {
	_, out, _ := runCapture(`
class Counter {
    func init(start) {
        set this.n = start
    }
    func bump() {
        set this.n = this.n + 1
        return this.n
    }
}
set c = new Counter(4)
show c.bump()
show c.bump()
`)
	assert.Equal(t, "5\n6\n", out)
}

func TestSuperRebindsClassToParentNotDefiningClass(t *testing.T) {
	_, out, _ := runCapture(`
class Animal {
    func speak() {
        return "..."
    }
}
class Dog extends Animal {
    func speak() {
        return "woof + " + super.speak()
    }
}
set d = new Dog()
show d.speak()
`)
	assert.Equal(t, "woof + ...\n", out)
}

func TestTryCatchWithoutCatchPropagatesAfterFinally(t *testing.T) {
	_, out, r := runCapture(`
try {
    throw "boom"
} finally {
    show "cleanup"
}
`)
	assert.Equal(t, "cleanup\n", out)
	assert.True(t, objects.IsError(r))
}

func TestTryCatchCatchesThrownValue(t *testing.T) {
	_, out, _ := runCapture(`
try {
    throw "boom"
} catch err {
    show err
}
`)
	assert.Equal(t, "boom\n", out)
}

func TestListDestructuring(t *testing.T) {
	_, out, _ := runCapture(`
set [a, b] = [1, 2]
show a + b
`)
	assert.Equal(t, "3\n", out)
}

func TestMatchStatementFallsThroughToDefault(t *testing.T) {
	_, out, _ := runCapture(`
match 9 {
case 1 {
    show "one"
}
default {
    show "other"
}
}
`)
	assert.Equal(t, "other\n", out)
}

func TestListHigherOrderMapFilterReduce(t *testing.T) {
	_, out, _ := runCapture(`
set nums = [1, 2, 3, 4]
set doubled = nums.map((x) => x * 2)
show doubled
set evens = nums.filter((x) => x % 2 == 0)
show evens
show nums.reduce((acc, x) => acc + x, 0)
`)
	assert.Equal(t, "[2, 4, 6, 8]\n[2, 4]\n10\n", out)
}

func TestGlobalBuiltinLenTypeRange(t *testing.T) {
	_, out, _ := runCapture(`
show len([1, 2, 3])
show type(5)
show range(3)
`)
	assert.Equal(t, "3\nint\n[0, 1, 2]\n", out)
}

func TestIfElifElse(t *testing.T) {
	_, out, _ := runCapture(`
set x = 2
if x == 1 {
    show "one"
} else if x == 2 {
    show "two"
} else {
    show "other"
}
`)
	assert.Equal(t, "two\n", out)
}

func TestWhileLoopWithBreakAndContinue(t *testing.T) {
	_, out, _ := runCapture(`
set i = 0
while i < 10 {
    set i = i + 1
    if i % 2 == 0 {
        continue
    }
    if i > 5 {
        break
    }
    show i
}
`)
	assert.Equal(t, "1\n3\n5\n", out)
}

func TestForRangeLoop(t *testing.T) {
	_, out, _ := runCapture(`
for i in 1 to 3 {
    show i
}
`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestForInListLoop(t *testing.T) {
	_, out, _ := runCapture(`
for item in [10, 20, 30] {
    show item
}
`)
	assert.Equal(t, "10\n20\n30\n", out)
}

func TestForInListTwoNamesBindsIndexThenValue(t *testing.T) {
	_, out, _ := runCapture(`
for i, v in [10, 20, 30] {
    show i
    show v
}
`)
	assert.Equal(t, "0\n10\n1\n20\n2\n30\n", out)
}

func TestForInStringTwoNamesBindsIndexThenChar(t *testing.T) {
	_, out, _ := runCapture(`
for i, c in "ab" {
    show i
    show c
}
`)
	assert.Equal(t, "0\na\n1\nb\n", out)
}

func TestForInStringSingleNameBindsChar(t *testing.T) {
	_, out, _ := runCapture(`
for c in "ab" {
    show c
}
`)
	assert.Equal(t, "a\nb\n", out)
}

func TestUseMathModule(t *testing.T) {
	_, out, _ := runCapture(`
use "math"
show math.sqrt(16)
show math.round(2.9)
`)
	assert.Equal(t, "4\n3\n", out)
}

func TestStringMethodsUpperSplitJoin(t *testing.T) {
	_, out, _ := runCapture(`
show "hello".upper()
show "a,b,c".split(",")
show "a,b,c".split(",").join("-")
`)
	assert.Equal(t, "HELLO\n[a, b, c]\na-b-c\n", out)
}

func TestStringSliceAndCharAt(t *testing.T) {
	_, out, _ := runCapture(`
show "hello".slice(1, 3)
show "hello".charAt(0)
show "ab".repeat(3)
`)
	assert.Equal(t, "el\na\nababab\n", out)
}

func TestListPushPopSortUnique(t *testing.T) {
	_, out, _ := runCapture(`
set xs = [3, 1, 2]
xs.push(9)
show xs
show xs.pop()
show xs.sort()
show [1, 1, 2, 2, 3].unique()
`)
	assert.Equal(t, "[3, 1, 2, 9]\n9\n[1, 2, 3]\n[1, 2, 3]\n", out)
}

func TestListSumMinMax(t *testing.T) {
	_, out, _ := runCapture(`
show [1, 2, 3].sum()
show [4, 1, 9].min()
show [4, 1, 9].max()
`)
	assert.Equal(t, "6\n1\n9\n", out)
}

func TestDictGetKeysValuesMerge(t *testing.T) {
	_, out, _ := runCapture(`
set d = {"a": 1, "b": 2}
show d.get("a")
show d.get("z", -1)
show d.keys()
show d.merge({"c": 3}).keys()
`)
	assert.Equal(t, "1\n-1\n[a, b]\n[a, b, c]\n", out)
}

func TestDictHasRemove(t *testing.T) {
	_, out, _ := runCapture(`
set d = {"a": 1}
show d.has("a")
d.remove("a")
show d.has("a")
`)
	assert.Equal(t, "true\nfalse\n", out)
}

func TestNumberMethodsAbsClampEvenOdd(t *testing.T) {
	_, out, _ := runCapture(`
show (-5).abs()
show 11.clamp(0, 10)
show 4.isEven()
show 3.isOdd()
`)
	assert.Equal(t, "5\n10\ntrue\ntrue\n", out)
}

func TestBuiltinMinMaxRound(t *testing.T) {
	_, out, _ := runCapture(`
show min(3, 1, 2)
show max([3, 1, 2])
show round(3.14159, 2)
`)
	assert.Equal(t, "1\n3\n3.14\n", out)
}

func TestBuiltinIsinstance(t *testing.T) {
	_, out, _ := runCapture(`
class Animal {
    func init() {
        set this.ok = true
    }
}
class Dog extends Animal {
    func init() {
        set this.ok = true
    }
}
set d = new Dog()
show isinstance(d, Dog)
show isinstance(d, Animal)
`)
	assert.Equal(t, "true\ntrue\n", out)
}

func TestAskStatementCoercesNumericInput(t *testing.T) {
	e := New()
	var out bytes.Buffer
	e.Writer = &out
	e.Reader = bufio.NewReader(strings.NewReader("42\n"))
	_, _ = e.RunSource(`
ask "n? " -> n
show n + 1
`)
	assert.Equal(t, "n? 43\n", out.String())
}
