package ast

import (
	"helios/internal/source"
)

// Expr is one expression: a span and a tagged payload.
type Expr struct {
	Span source.Span
	Kind ExprKind
}

// ExprKind is the closed set of expression payloads.
type ExprKind interface{ exprKind() }

func (*ExprArray) exprKind()       {}
func (*ExprAssign) exprKind()      {}
func (*ExprBinary) exprKind()      {}
func (*ExprCall) exprKind()        {}
func (*ExprCallOptions) exprKind() {}
func (*ExprDelete) exprKind()      {}
func (*ExprIdent) exprKind()       {}
func (*ExprIndex) exprKind()       {}
func (*ExprSlice) exprKind()       {}
func (*ExprLit) exprKind()         {}
func (*ExprMember) exprKind()      {}
func (*ExprNew) exprKind()         {}
func (*ExprPayable) exprKind()     {}
func (*ExprTernary) exprKind()     {}
func (*ExprTuple) exprKind()       {}
func (*ExprTypeCall) exprKind()    {}
func (*ExprType) exprKind()        {}
func (*ExprUnary) exprKind()       {}

// ExprArray is `[a, b, c]`.
type ExprArray struct {
	Elems []*Expr
}

// ExprAssign is `lhs = rhs` or a compound assignment; Op is
// BinOpInvalid for plain `=`.
type ExprAssign struct {
	Lhs *Expr
	Op  BinOp
	Rhs *Expr
}

// ExprBinary is `lhs <op> rhs`.
type ExprBinary struct {
	Lhs *Expr
	Op  BinOp
	Rhs *Expr
}

// ExprCall is `callee(args)`.
type ExprCall struct {
	Callee *Expr
	Args   CallArgs
}

// ExprCallOptions is `callee{value: 1, gas: 2}`.
type ExprCallOptions struct {
	Callee *Expr
	Opts   NamedArgs
}

// ExprDelete is `delete x`.
type ExprDelete struct {
	Expr *Expr
}

// ExprIdent is a bare identifier.
type ExprIdent struct {
	Ident source.Ident
}

// ExprIndex is `x[i]`; Index is nil for `x[]`.
type ExprIndex struct {
	Expr  *Expr
	Index *Expr
}

// ExprSlice is `x[start:end]`; either bound may be nil.
type ExprSlice struct {
	Expr  *Expr
	Start *Expr
	End   *Expr
}

// ExprLit is a literal with an optional denomination suffix
// (`1 ether`, `30 days`).
type ExprLit struct {
	Lit   Lit
	Denom SubDenomination
}

// ExprMember is `expr.member`.
type ExprMember struct {
	Expr   *Expr
	Member source.Ident
}

// ExprNew is `new T`.
type ExprNew struct {
	Ty Ty
}

// ExprPayable is `payable(args)`.
type ExprPayable struct {
	Args CallArgs
}

// ExprTernary is `cond ? then : els`.
type ExprTernary struct {
	Cond *Expr
	Then *Expr
	Else *Expr
}

// ExprTuple is `(a, , c)`; missing elements are nil.
type ExprTuple struct {
	Elems []*Expr
}

// ExprTypeCall is `type(T)`.
type ExprTypeCall struct {
	Ty Ty
}

// ExprType is an elementary type used in expression position
// (`uint256.max` style accesses).
type ExprType struct {
	Ty Ty
}

// ExprUnary is a prefix or postfix unary operation.
type ExprUnary struct {
	Op   UnOp
	Expr *Expr
}

// CallArgs holds call arguments: positional or named, never both.
type CallArgs struct {
	Unnamed []*Expr
	Named   NamedArgs
}

// IsNamed reports whether the arguments use the `{name: value}` form.
func (a *CallArgs) IsNamed() bool {
	return len(a.Named) > 0
}

// Len returns the argument count of whichever form is present.
func (a *CallArgs) Len() int {
	if a.IsNamed() {
		return len(a.Named)
	}
	return len(a.Unnamed)
}

// NamedArgs is a `{name: value, ...}` argument list.
type NamedArgs []NamedArg

type NamedArg struct {
	Name  source.Ident
	Value *Expr
}
