package ast

import "fmt"

// Visitor is the per-variant callback set driven by Walk. Dispatch is
// double: Walk selects the method matching the node's variant, and the
// visitor's dynamic type selects the behavior that fires.
//
// Each method reports whether Walk should descend into the node's
// children. Returning false prunes the subtree; a visitor that wants a
// different recursion order returns false and issues its own
// Walk/WalkChildren calls instead.
//
// Embed NoopVisitor to implement only the variants a pass cares about.
type Visitor interface {
	VisitBlock(n *Block) bool
	VisitClass(n *Class) bool
	VisitType(n *Type) bool
	VisitVariable(n *Variable) bool
	VisitParameter(n *Parameter) bool
	VisitFunction(n *Function) bool
	VisitScope(n *Scope) bool
	VisitLabel(n *Label) bool
	VisitGoto(n *Goto) bool
	VisitReturn(n *Return) bool
	VisitBreak(n *Break) bool
	VisitContinue(n *Continue) bool
	VisitIf(n *If) bool
	VisitWhile(n *While) bool
	VisitFor(n *For) bool
	VisitValue(n *Value) bool
	VisitBinaryOp(n *BinaryOp) bool
	VisitUnaryOp(n *UnaryOp) bool
	VisitMemberAccess(n *MemberAccess) bool
	VisitCall(n *Call) bool
	VisitCast(n *Cast) bool
	VisitIndex(n *Index) bool
}

// Walk traverses a tree in depth-first pre-order: it invokes the
// visitor callback for n, then recurses into n's children in declared
// field order. If the callback returns false, the children are not
// visited. Absent nodes and absent optional children are skipped
// silently; the visitor is never invoked for a missing node.
//
// Walk never mutates the tree. Re-walking the same tree with a pure
// visitor yields an identical visitation sequence.
func Walk(n Node, v Visitor) {
	if absent(n) {
		return
	}
	if !visit(n, v) {
		return
	}
	WalkChildren(n, v)
}

// WalkChildren traverses the children of n in declared field order
// without invoking n's own callback. It is the entry point for
// visitors that re-enter the traversal from inside a callback and must
// not fire for the node they are already handling.
//
// Walking a node whose mandatory child slot is unpopulated panics: a
// hole there is a bug in tree construction, and failing fast beats
// visiting inconsistent state.
func WalkChildren(n Node, v Visitor) {
	switch n := n.(type) {
	case *Block:
		for _, d := range n.Globals {
			Walk(d, v)
		}

	case *Class:
		for _, m := range n.Members {
			Walk(m, v)
		}

	case *Variable:
		must(n.Type, v, "Variable.Type")
		Walk(n.Init, v)

	case *Parameter:
		must(n.Type, v, "Parameter.Type")

	case *Function:
		for _, p := range n.Params {
			Walk(p, v)
		}
		Walk(n.Result, v)
		must(n.Body, v, "Function.Body")

	case *Scope:
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *Return:
		Walk(n.Result, v)

	case *If:
		Walk(n.Cond, v)
		must(n.Then, v, "If.Then")
		Walk(n.Else, v)

	case *While:
		must(n.Cond, v, "While.Cond")
		must(n.Body, v, "While.Body")

	case *For:
		Walk(n.InitVar, v)
		Walk(n.InitExpr, v)
		Walk(n.Cond, v)
		Walk(n.Post, v)
		must(n.Body, v, "For.Body")

	case *BinaryOp:
		must(n.X, v, "BinaryOp.X")
		must(n.Y, v, "BinaryOp.Y")

	case *UnaryOp:
		must(n.X, v, "UnaryOp.X")

	case *MemberAccess:
		must(n.X, v, "MemberAccess.X")

	case *Call:
		must(n.X, v, "Call.X")
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *Cast:
		must(n.X, v, "Cast.X")
		must(n.Type, v, "Cast.Type")

	case *Index:
		must(n.X, v, "Index.X")
		must(n.Index, v, "Index.Index")

	// Leaf nodes: Type, Label, Goto, Break, Continue, Value
	// No children to visit
	}
}

// visit performs the variant half of the double dispatch for a single
// node and returns the visitor's descend decision.
func visit(n Node, v Visitor) bool {
	switch n := n.(type) {
	case *Block:
		return v.VisitBlock(n)
	case *Class:
		return v.VisitClass(n)
	case *Type:
		return v.VisitType(n)
	case *Variable:
		return v.VisitVariable(n)
	case *Parameter:
		return v.VisitParameter(n)
	case *Function:
		return v.VisitFunction(n)
	case *Scope:
		return v.VisitScope(n)
	case *Label:
		return v.VisitLabel(n)
	case *Goto:
		return v.VisitGoto(n)
	case *Return:
		return v.VisitReturn(n)
	case *Break:
		return v.VisitBreak(n)
	case *Continue:
		return v.VisitContinue(n)
	case *If:
		return v.VisitIf(n)
	case *While:
		return v.VisitWhile(n)
	case *For:
		return v.VisitFor(n)
	case *Value:
		return v.VisitValue(n)
	case *BinaryOp:
		return v.VisitBinaryOp(n)
	case *UnaryOp:
		return v.VisitUnaryOp(n)
	case *MemberAccess:
		return v.VisitMemberAccess(n)
	case *Call:
		return v.VisitCall(n)
	case *Cast:
		return v.VisitCast(n)
	case *Index:
		return v.VisitIndex(n)
	}
	panic(fmt.Sprintf("ast: unexpected node type %T", n))
}

// must walks a mandatory child and panics if it is absent.
func must(n Node, v Visitor, slot string) {
	if absent(n) {
		panic("ast: missing mandatory child " + slot)
	}
	Walk(n, v)
}

// NoopVisitor implements Visitor with callbacks that do nothing and
// always descend. Embed it in a pass to override only the variants the
// pass handles.
type NoopVisitor struct{}

func (NoopVisitor) VisitBlock(*Block) bool               { return true }
func (NoopVisitor) VisitClass(*Class) bool               { return true }
func (NoopVisitor) VisitType(*Type) bool                 { return true }
func (NoopVisitor) VisitVariable(*Variable) bool         { return true }
func (NoopVisitor) VisitParameter(*Parameter) bool       { return true }
func (NoopVisitor) VisitFunction(*Function) bool         { return true }
func (NoopVisitor) VisitScope(*Scope) bool               { return true }
func (NoopVisitor) VisitLabel(*Label) bool               { return true }
func (NoopVisitor) VisitGoto(*Goto) bool                 { return true }
func (NoopVisitor) VisitReturn(*Return) bool             { return true }
func (NoopVisitor) VisitBreak(*Break) bool               { return true }
func (NoopVisitor) VisitContinue(*Continue) bool         { return true }
func (NoopVisitor) VisitIf(*If) bool                     { return true }
func (NoopVisitor) VisitWhile(*While) bool               { return true }
func (NoopVisitor) VisitFor(*For) bool                   { return true }
func (NoopVisitor) VisitValue(*Value) bool               { return true }
func (NoopVisitor) VisitBinaryOp(*BinaryOp) bool         { return true }
func (NoopVisitor) VisitUnaryOp(*UnaryOp) bool           { return true }
func (NoopVisitor) VisitMemberAccess(*MemberAccess) bool { return true }
func (NoopVisitor) VisitCall(*Call) bool                 { return true }
func (NoopVisitor) VisitCast(*Cast) bool                 { return true }
func (NoopVisitor) VisitIndex(*Index) bool               { return true }

// inspector adapts a plain function to the Visitor interface.
type inspector func(Node) bool

func (f inspector) VisitBlock(n *Block) bool               { return f(n) }
func (f inspector) VisitClass(n *Class) bool               { return f(n) }
func (f inspector) VisitType(n *Type) bool                 { return f(n) }
func (f inspector) VisitVariable(n *Variable) bool         { return f(n) }
func (f inspector) VisitParameter(n *Parameter) bool       { return f(n) }
func (f inspector) VisitFunction(n *Function) bool         { return f(n) }
func (f inspector) VisitScope(n *Scope) bool               { return f(n) }
func (f inspector) VisitLabel(n *Label) bool               { return f(n) }
func (f inspector) VisitGoto(n *Goto) bool                 { return f(n) }
func (f inspector) VisitReturn(n *Return) bool             { return f(n) }
func (f inspector) VisitBreak(n *Break) bool               { return f(n) }
func (f inspector) VisitContinue(n *Continue) bool         { return f(n) }
func (f inspector) VisitIf(n *If) bool                     { return f(n) }
func (f inspector) VisitWhile(n *While) bool               { return f(n) }
func (f inspector) VisitFor(n *For) bool                   { return f(n) }
func (f inspector) VisitValue(n *Value) bool               { return f(n) }
func (f inspector) VisitBinaryOp(n *BinaryOp) bool         { return f(n) }
func (f inspector) VisitUnaryOp(n *UnaryOp) bool           { return f(n) }
func (f inspector) VisitMemberAccess(n *MemberAccess) bool { return f(n) }
func (f inspector) VisitCall(n *Call) bool                 { return f(n) }
func (f inspector) VisitCast(n *Cast) bool                 { return f(n) }
func (f inspector) VisitIndex(n *Index) bool               { return f(n) }

// Inspect traverses a tree and calls f for each node, regardless of
// variant. If f returns false, the children of the node are not
// visited. Convenience wrapper around Walk.
func Inspect(n Node, f func(Node) bool) {
	Walk(n, inspector(f))
}
