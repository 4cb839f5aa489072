package ast

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/sable-lang/sable/token"
)

// ----------------------------------------------------------------------------
// Test helpers

var testPos = token.NewPos("test.sb", 1, 1)

func tok(k token.Kind, text string) token.Token {
	return token.Token{Kind: k, Text: text, Pos: testPos}
}

func name(s string) token.Token {
	return tok(token.Name, s)
}

// label returns a readable identity for a node in a recorded
// visitation sequence.
func label(n Node) string {
	switch n := n.(type) {
	case *Block:
		return "Block"
	case *Class:
		return "Class " + n.Name.Text
	case *Type:
		return "Type " + n.Name.Text
	case *Variable:
		return "Variable " + n.Name.Text
	case *Parameter:
		return "Parameter " + n.Name.Text
	case *Function:
		return "Function " + n.Name.Text
	case *Scope:
		return "Scope"
	case *Label:
		return "Label " + n.Name.Text
	case *Goto:
		return "Goto " + n.Target.Text
	case *Return:
		return "Return"
	case *Break:
		return "Break"
	case *Continue:
		return "Continue"
	case *If:
		return "If"
	case *While:
		return "While"
	case *For:
		return "For"
	case *Value:
		return "Value " + n.Tok.Text
	case *BinaryOp:
		return "BinaryOp " + n.Op.Text
	case *UnaryOp:
		return "UnaryOp " + n.Op.Text
	case *MemberAccess:
		return "MemberAccess " + n.Name.Text
	case *Call:
		return "Call"
	case *Cast:
		return "Cast"
	case *Index:
		return "Index"
	}
	return fmt.Sprintf("%T", n)
}

// record walks n and returns the visitation sequence. It fails the
// test if the traversal ever hands the visitor a missing node.
func record(t *testing.T, n Node) []string {
	t.Helper()
	var seq []string
	Inspect(n, func(n Node) bool {
		if absent(n) {
			t.Fatal("visitor invoked for an absent node")
		}
		seq = append(seq, label(n))
		return true
	})
	return seq
}

func checkSeq(t *testing.T, got, want []string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visitation sequence = %v, want %v", got, want)
	}
}

// funcTree builds:
//
//	function add(x: Int) -> Int { return x + 1 }
func funcTree() *Block {
	intType := func() *Type { return NewType(testPos, name("Int"), 0) }

	ret := NewReturn(testPos)
	ret.Result = NewBinaryOp(tok(token.Add, "+"),
		NewValue(name("x")),
		NewValue(tok(token.IntLit, "1")))

	body := NewScope(testPos)
	body.Stmts.Push(ret)

	fn := NewFunction(testPos, name("add"), body)
	fn.Params.Push(NewParameter(testPos, name("x"), intType()))
	fn.Result = intType()

	b := NewBlock(testPos)
	b.Globals.Push(fn)
	return b
}

// ----------------------------------------------------------------------------
// Visitation order

func TestWalkFunctionOrder(t *testing.T) {
	got := record(t, funcTree())
	want := []string{
		"Block",
		"Function add",
		"Parameter x",
		"Type Int",
		"Type Int", // return type
		"Scope",
		"Return",
		"BinaryOp +",
		"Value x",
		"Value 1",
	}
	checkSeq(t, got, want)
}

func TestWalkIfElseChain(t *testing.T) {
	// if c { } else { } — the bare else is an If with no condition.
	bareElse := NewIf(testPos, NewScope(testPos))

	chain := NewIf(testPos, NewScope(testPos))
	chain.Cond = NewValue(name("c"))
	chain.Else = bareElse

	got := record(t, chain)
	want := []string{
		"If",
		"Value c",
		"Scope",
		"If", // else branch: no condition callback
		"Scope",
	}
	checkSeq(t, got, want)
}

func TestWalkPostfixChain(t *testing.T) {
	// a.b(c)[d]
	access := NewMemberAccess(NewValue(name("a")), tok(token.Dot, "."), name("b"))
	call := NewCall(access)
	call.Args.Push(NewValue(name("c")))
	idx := NewIndex(call, NewValue(name("d")))

	got := record(t, idx)
	want := []string{
		"Index",
		"Call",
		"MemberAccess b",
		"Value a",
		"Value c",
		"Value d",
	}
	checkSeq(t, got, want)
}

func TestWalkForClauses(t *testing.T) {
	// for (var i: Int = 0; i < n; i = i + 1) { continue }
	init := NewVariable(testPos, name("i"), NewType(testPos, name("Int"), 0))
	init.Init = NewValue(tok(token.IntLit, "0"))

	body := NewScope(testPos)
	body.Stmts.Push(NewContinue(testPos))

	loop := NewFor(testPos, body)
	loop.InitVar = init
	loop.Cond = NewBinaryOp(tok(token.Lss, "<"), NewValue(name("i")), NewValue(name("n")))
	loop.Post = NewBinaryOp(tok(token.Assign, "="),
		NewValue(name("i")),
		NewBinaryOp(tok(token.Add, "+"), NewValue(name("i")), NewValue(tok(token.IntLit, "1"))))

	got := record(t, loop)
	want := []string{
		"For",
		"Variable i",
		"Type Int",
		"Value 0",
		"BinaryOp <",
		"Value i",
		"Value n",
		"BinaryOp =",
		"Value i",
		"BinaryOp +",
		"Value i",
		"Value 1",
		"Scope",
		"Continue",
	}
	checkSeq(t, got, want)
}

func TestWalkClassMembers(t *testing.T) {
	cls := NewClass(testPos, name("Animal"))
	cls.Members.Push(NewVariable(testPos, name("age"), NewType(testPos, name("Int"), 0)))
	cls.Members.Push(NewFunction(testPos, name("speak"), NewScope(testPos)))

	b := NewBlock(testPos)
	b.Globals.Push(cls)

	got := record(t, b)
	want := []string{
		"Block",
		"Class Animal",
		"Variable age",
		"Type Int",
		"Function speak",
		"Scope",
	}
	checkSeq(t, got, want)
}

// ----------------------------------------------------------------------------
// Absent optional children

func TestWalkAbsentOptionals(t *testing.T) {
	// Every optional slot left empty: bare return, variable without
	// initializer, for with only a body, function without return type.
	body := NewScope(testPos)
	body.Stmts.Push(NewVariable(testPos, name("x"), NewType(testPos, name("Int"), 0)))
	body.Stmts.Push(NewReturn(testPos))

	loop := NewFor(testPos, NewScope(testPos))
	body.Stmts.Push(loop)

	fn := NewFunction(testPos, name("run"), body)

	got := record(t, fn)
	want := []string{
		"Function run",
		"Scope",
		"Variable x",
		"Type Int",
		"Return",
		"For",
		"Scope",
	}
	checkSeq(t, got, want)
}

func TestWalkTypedNilOptional(t *testing.T) {
	// A typed nil stored through an interface-typed slot is still an
	// absent child and must not reach the visitor.
	loop := NewFor(testPos, NewScope(testPos))
	loop.InitVar = (*Variable)(nil)
	loop.Cond = (Expr)((*Value)(nil))

	got := record(t, loop)
	checkSeq(t, got, []string{"For", "Scope"})
}

// ----------------------------------------------------------------------------
// Walk contract

func TestWalkIdempotent(t *testing.T) {
	tree := funcTree()
	first := record(t, tree)
	second := record(t, tree)
	checkSeq(t, second, first)
}

func TestWalkChildrenSkipsRoot(t *testing.T) {
	tree := funcTree()
	full := record(t, tree)

	var children []string
	WalkChildren(tree, inspector(func(n Node) bool {
		children = append(children, label(n))
		return true
	}))

	checkSeq(t, children, full[1:])
}

func TestWalkPrune(t *testing.T) {
	b := funcTree()
	b.Globals.Push(NewVariable(testPos, name("g"), NewType(testPos, name("Int"), 0)))

	var seq []string
	Inspect(b, func(n Node) bool {
		seq = append(seq, label(n))
		_, isFn := n.(*Function)
		return !isFn
	})

	// The function subtree is pruned; its sibling is still visited.
	want := []string{
		"Block",
		"Function add",
		"Variable g",
		"Type Int",
	}
	checkSeq(t, seq, want)
}

func TestWalkMissingMandatoryPanics(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"while without cond", &While{Body: NewScope(testPos)}},
		{"while without body", &While{Cond: NewValue(name("c"))}},
		{"binary op without right", &BinaryOp{Op: tok(token.Add, "+"), X: NewValue(name("x"))}},
		{"index without index", NewIndex(NewValue(name("a")), nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Walk did not panic on a missing mandatory child")
				}
			}()
			Walk(tt.node, NoopVisitor{})
		})
	}
}

func TestWalkNilRoot(t *testing.T) {
	// Walking an absent root is a no-op, not a panic.
	Walk(nil, NoopVisitor{})
}

// ----------------------------------------------------------------------------
// Visitor dispatch

// valueCollector handles only Value nodes and inherits no-op behavior
// for every other variant.
type valueCollector struct {
	NoopVisitor
	names []string
}

func (c *valueCollector) VisitValue(n *Value) bool {
	c.names = append(c.names, n.Tok.Text)
	return true
}

func TestMinimalVisitor(t *testing.T) {
	var c valueCollector
	Walk(funcTree(), &c)

	want := []string{"x", "1"}
	if !reflect.DeepEqual(c.names, want) {
		t.Errorf("collected values = %v, want %v", c.names, want)
	}
}

// reentrantCounter redirects recursion: on Scope it walks the children
// itself through WalkChildren and returns false, verifying the
// re-entrant call does not re-fire the Scope callback.
type reentrantCounter struct {
	NoopVisitor
	scopes int
	stmts  int
}

func (c *reentrantCounter) VisitScope(n *Scope) bool {
	c.scopes++
	WalkChildren(n, c)
	return false
}

func (c *reentrantCounter) VisitReturn(*Return) bool {
	c.stmts++
	return true
}

func TestReentrantWalkChildren(t *testing.T) {
	var c reentrantCounter
	Walk(funcTree(), &c)

	if c.scopes != 1 {
		t.Errorf("scope callbacks = %d, want 1", c.scopes)
	}
	if c.stmts != 1 {
		t.Errorf("return callbacks = %d, want 1", c.stmts)
	}
}
