// Package ast declares the syntax tree produced by the Sable parser and
// the visitor protocol used by later compiler passes to traverse it.
package ast

import "github.com/sable-lang/sable/token"

// ----------------------------------------------------------------------------
// Interfaces
//
// There are 4 classes of nodes: Declarations, Statements, Expressions,
// and Postfix expressions. All nodes implement the Node interface.
// Every expression is also a statement, and every postfix expression is
// also an expression, so the interfaces nest accordingly. A slot typed
// as one of these interfaces may legally hold any variant of the
// narrower classes.
//
// The tree is strictly ownership-shaped: a parent exclusively owns each
// child, nodes store no parent back-references, and passes that need
// upward context thread it themselves during traversal. Later passes
// annotate nodes through side tables keyed by node identity; they do
// not mutate these structs.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	aNode()         // marker method to restrict implementations to this package
}

// Decl is the interface for nodes that may appear at the top level of a
// Block or in a Class member list: Class, Variable, and Function.
type Decl interface {
	Node
	aDecl()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Expr is the interface for all expression nodes.
// Expressions may appear anywhere a statement may.
type Expr interface {
	Stmt
	aExpr()
}

// PostExpr is the interface for postfix expression nodes
// (MemberAccess, Call, Cast, Index). Every postfix expression has a
// mandatory operand: the expression being accessed, called, cast, or
// indexed.
type PostExpr interface {
	Expr
	Operand() Expr
	aPostExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	pos token.Pos
}

func (n *node) Pos() token.Pos { return n.pos }
func (n *node) aNode()         {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// expr is embedded in all expression nodes.
type expr struct{ stmt }

func (*expr) aExpr() {}

// postExpr is embedded in all postfix expression nodes and carries
// their shared operand. The operand is mandatory once the tree is
// well-formed.
type postExpr struct {
	expr
	X Expr // operand: callee, accessed value, cast value, indexed value
}

func (p *postExpr) Operand() Expr { return p.X }
func (*postExpr) aPostExpr()      {}

// ----------------------------------------------------------------------------
// Blocks and Declarations

// Block represents a whole translation unit: the ordered list of
// top-level declarations of one source file.
type Block struct {
	node
	Globals List[Decl] // Class / Variable / Function, in source order
}

// NewBlock creates an empty Block. Globals are added with Push.
func NewBlock(pos token.Pos) *Block {
	return &Block{node: node{pos: pos}}
}

// Class represents a class declaration: class Name { Members... }
type Class struct {
	decl
	Name    token.Token // class name
	Members List[Decl]  // Variable / Function, in source order
}

// NewClass creates a Class with no members. Members are added with Push.
func NewClass(pos token.Pos, name token.Token) *Class {
	return &Class{decl: decl{node{pos: pos}}, Name: name}
}

// Type represents a named type reference with pointer indirection:
// Name, Name*, Name**, ...
type Type struct {
	node
	Name         token.Token // type name
	PointerCount int         // number of trailing *s, non-negative
}

// NewType creates a Type reference.
func NewType(pos token.Pos, name token.Token, pointerCount int) *Type {
	return &Type{node: node{pos: pos}, Name: name, PointerCount: pointerCount}
}

// Variable represents a variable declaration: var Name : Type = Init
// A Variable is a statement inside function bodies and a declaration at
// the top level or inside a class.
type Variable struct {
	stmt
	Name token.Token // variable name
	Type *Type       // declared type
	Init Expr        // initial value (nil if none)
}

func (*Variable) aDecl() {}

// NewVariable creates a Variable with no initializer; assign Init to
// add one.
func NewVariable(pos token.Pos, name token.Token, typ *Type) *Variable {
	return &Variable{stmt: stmt{node{pos: pos}}, Name: name, Type: typ}
}

// Parameter represents a single function parameter: Name : Type
type Parameter struct {
	node
	Name token.Token // parameter name
	Type *Type       // parameter type
}

// NewParameter creates a Parameter.
func NewParameter(pos token.Pos, name token.Token, typ *Type) *Parameter {
	return &Parameter{node: node{pos: pos}, Name: name, Type: typ}
}

// Function represents a function declaration:
// function Name(Params) -> Result { Body }
type Function struct {
	decl
	Name   token.Token      // function name
	Params List[*Parameter] // parameter list, in source order
	Result *Type            // return type (nil for void)
	Body   *Scope           // function body
}

// NewFunction creates a Function with an empty parameter list and no
// return type. Parameters are added with Push; assign Result for a
// non-void function.
func NewFunction(pos token.Pos, name token.Token, body *Scope) *Function {
	return &Function{decl: decl{node{pos: pos}}, Name: name, Body: body}
}

// ----------------------------------------------------------------------------
// Statements

// Scope represents a braced statement list: { Stmts... }
type Scope struct {
	stmt
	Stmts List[Stmt] // statements, in source order
}

// NewScope creates an empty Scope. Statements are added with Push.
func NewScope(pos token.Pos) *Scope {
	return &Scope{stmt: stmt{node{pos: pos}}}
}

// Label represents a label declaration: label Name
type Label struct {
	stmt
	Name token.Token // label name
}

// NewLabel creates a Label.
func NewLabel(pos token.Pos, name token.Token) *Label {
	return &Label{stmt: stmt{node{pos: pos}}, Name: name}
}

// Goto represents a goto statement: goto Target
type Goto struct {
	stmt
	Target token.Token // name of the label jumped to
}

// NewGoto creates a Goto.
func NewGoto(pos token.Pos, target token.Token) *Goto {
	return &Goto{stmt: stmt{node{pos: pos}}, Target: target}
}

// Return represents a return statement: return [Result]
type Return struct {
	stmt
	Result Expr // return value (nil for bare return)
}

// NewReturn creates a bare Return; assign Result for a value return.
func NewReturn(pos token.Pos) *Return {
	return &Return{stmt: stmt{node{pos: pos}}}
}

// Break represents a break statement.
type Break struct {
	stmt
}

// NewBreak creates a Break.
func NewBreak(pos token.Pos) *Break {
	return &Break{stmt: stmt{node{pos: pos}}}
}

// Continue represents a continue statement.
type Continue struct {
	stmt
}

// NewContinue creates a Continue.
func NewContinue(pos token.Pos) *Continue {
	return &Continue{stmt: stmt{node{pos: pos}}}
}

// If represents one link of an if/else-if/else chain:
// if Cond { Then } else Else
// Else, when present, is always another If, so else-if chains nest
// uniformly; a trailing bare else is an If with a nil Cond.
type If struct {
	stmt
	Cond Expr   // condition (nil for a bare trailing else)
	Then *Scope // then branch
	Else *If    // else branch (nil if none)
}

// NewIf creates an If with no condition and no else; assign Cond and
// Else as the construct requires.
func NewIf(pos token.Pos, then *Scope) *If {
	return &If{stmt: stmt{node{pos: pos}}, Then: then}
}

// While represents a while loop: while Cond { Body }
type While struct {
	stmt
	Cond Expr   // loop condition
	Body *Scope // loop body
}

// NewWhile creates a While.
func NewWhile(pos token.Pos, cond Expr, body *Scope) *While {
	return &While{stmt: stmt{node{pos: pos}}, Cond: cond, Body: body}
}

// For represents a C-style for loop:
// for (Init; Cond; Post) { Body }
// The init clause is either a variable declaration (InitVar) or an
// expression (InitExpr), never both; the parser must set at most one.
type For struct {
	stmt
	InitVar  *Variable // init variable declaration (nil if none)
	InitExpr Expr      // init expression (nil if none)
	Cond     Expr      // loop condition (nil if none)
	Post     Expr      // iteration expression (nil if none)
	Body     *Scope    // loop body
}

// NewFor creates a For with empty init, condition, and post clauses.
func NewFor(pos token.Pos, body *Scope) *For {
	return &For{stmt: stmt{node{pos: pos}}, Body: body}
}

// ----------------------------------------------------------------------------
// Expressions

// Value represents a literal or an identifier reference.
type Value struct {
	expr
	Tok token.Token // the literal or name token
}

// NewValue creates a Value positioned at its token.
func NewValue(tok token.Token) *Value {
	return &Value{expr: expr{stmt{node{pos: tok.Pos}}}, Tok: tok}
}

// BinaryOp represents a binary operation: X Op Y
type BinaryOp struct {
	expr
	Op token.Token // operator token
	X  Expr        // left operand
	Y  Expr        // right operand
}

// NewBinaryOp creates a BinaryOp.
func NewBinaryOp(op token.Token, x, y Expr) *BinaryOp {
	return &BinaryOp{expr: expr{stmt{node{pos: op.Pos}}}, Op: op, X: x, Y: y}
}

// UnaryOp represents a prefix unary operation: Op X
type UnaryOp struct {
	expr
	Op token.Token // operator token
	X  Expr        // operand
}

// NewUnaryOp creates a UnaryOp.
func NewUnaryOp(op token.Token, x Expr) *UnaryOp {
	return &UnaryOp{expr: expr{stmt{node{pos: op.Pos}}}, Op: op, X: x}
}

// ----------------------------------------------------------------------------
// Postfix expressions
//
// Postfix expressions left-associate, so a chain like a.b(c)[d] nests
// with the accessed/called/indexed value as the Operand of the next
// link outward. All postfix constructors take their position from the
// operand.

// MemberAccess represents a member access: X.Name or X->Name
type MemberAccess struct {
	postExpr
	Op   token.Token // access operator: . or ->
	Name token.Token // member name
}

// NewMemberAccess creates a MemberAccess on operand x.
func NewMemberAccess(x Expr, op, name token.Token) *MemberAccess {
	n := &MemberAccess{Op: op, Name: name}
	n.pos = x.Pos()
	n.X = x
	return n
}

// Call represents a function call: X(Args...)
type Call struct {
	postExpr
	Args List[Expr] // argument list, in source order
}

// NewCall creates a Call of operand x with no arguments. Arguments are
// added with Push.
func NewCall(x Expr) *Call {
	n := &Call{}
	n.pos = x.Pos()
	n.X = x
	return n
}

// Cast represents a cast: X as Type
type Cast struct {
	postExpr
	Type *Type // target type
}

// NewCast creates a Cast of operand x to typ.
func NewCast(x Expr, typ *Type) *Cast {
	n := &Cast{Type: typ}
	n.pos = x.Pos()
	n.X = x
	return n
}

// Index represents an index expression: X[Index]
type Index struct {
	postExpr
	Index Expr // index expression
}

// NewIndex creates an Index of operand x.
func NewIndex(x, index Expr) *Index {
	n := &Index{Index: index}
	n.pos = x.Pos()
	n.X = x
	return n
}
