package ast

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indented textual representation of the tree to w,
// one node per line. It is a debugging aid, not a source formatter.
func Fprint(w io.Writer, n Node) {
	Walk(n, &printer{w: w})
}

// printer is a Visitor: each callback prints one line, then drives the
// node's children itself through WalkChildren so the indentation depth
// follows the tree depth, and returns false to keep Walk from
// descending a second time.
type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// enter prints a node header and walks the node's children one level
// deeper.
func (p *printer) enter(n Node, format string, args ...any) bool {
	p.printf(format, args...)
	p.indent++
	WalkChildren(n, p)
	p.indent--
	return false
}

func (p *printer) VisitBlock(n *Block) bool {
	return p.enter(n, "Block %s\n", n.pos)
}

func (p *printer) VisitClass(n *Class) bool {
	return p.enter(n, "Class %s %s\n", n.pos, n.Name.Text)
}

func (p *printer) VisitType(n *Type) bool {
	p.printf("Type %s %s\n", n.pos, typeString(n))
	return true
}

func (p *printer) VisitVariable(n *Variable) bool {
	return p.enter(n, "Variable %s %s\n", n.pos, n.Name.Text)
}

func (p *printer) VisitParameter(n *Parameter) bool {
	return p.enter(n, "Parameter %s %s\n", n.pos, n.Name.Text)
}

func (p *printer) VisitFunction(n *Function) bool {
	return p.enter(n, "Function %s %s\n", n.pos, n.Name.Text)
}

func (p *printer) VisitScope(n *Scope) bool {
	return p.enter(n, "Scope %s\n", n.pos)
}

func (p *printer) VisitLabel(n *Label) bool {
	p.printf("Label %s %s\n", n.pos, n.Name.Text)
	return true
}

func (p *printer) VisitGoto(n *Goto) bool {
	p.printf("Goto %s %s\n", n.pos, n.Target.Text)
	return true
}

func (p *printer) VisitReturn(n *Return) bool {
	return p.enter(n, "Return %s\n", n.pos)
}

func (p *printer) VisitBreak(n *Break) bool {
	p.printf("Break %s\n", n.pos)
	return true
}

func (p *printer) VisitContinue(n *Continue) bool {
	p.printf("Continue %s\n", n.pos)
	return true
}

func (p *printer) VisitIf(n *If) bool {
	return p.enter(n, "If %s\n", n.pos)
}

func (p *printer) VisitWhile(n *While) bool {
	return p.enter(n, "While %s\n", n.pos)
}

func (p *printer) VisitFor(n *For) bool {
	return p.enter(n, "For %s\n", n.pos)
}

func (p *printer) VisitValue(n *Value) bool {
	p.printf("Value %s %s %q\n", n.pos, n.Tok.Kind, n.Tok.Text)
	return true
}

func (p *printer) VisitBinaryOp(n *BinaryOp) bool {
	return p.enter(n, "BinaryOp %s %s\n", n.pos, n.Op.Kind)
}

func (p *printer) VisitUnaryOp(n *UnaryOp) bool {
	return p.enter(n, "UnaryOp %s %s\n", n.pos, n.Op.Kind)
}

func (p *printer) VisitMemberAccess(n *MemberAccess) bool {
	return p.enter(n, "MemberAccess %s %s%s\n", n.pos, n.Op.Kind, n.Name.Text)
}

func (p *printer) VisitCall(n *Call) bool {
	return p.enter(n, "Call %s\n", n.pos)
}

func (p *printer) VisitCast(n *Cast) bool {
	return p.enter(n, "Cast %s\n", n.pos)
}

func (p *printer) VisitIndex(n *Index) bool {
	return p.enter(n, "Index %s\n", n.pos)
}

// typeString returns the source spelling of a type reference: the name
// followed by its pointer stars.
func typeString(t *Type) string {
	return t.Name.Text + strings.Repeat("*", t.PointerCount)
}
