package ast

import (
	"helios/internal/source"
)

// Convenience constructors for the handful of shapes that get built in
// many places: synthesized nodes, desugaring passes and tests. The
// parser builds everything else directly.

func NewExpr(span source.Span, kind ExprKind) *Expr {
	return &Expr{Span: span, Kind: kind}
}

func NewStmt(span source.Span, kind StmtKind) *Stmt {
	return &Stmt{Span: span, Kind: kind}
}

func NewItem(span source.Span, kind ItemKind) *Item {
	return &Item{Span: span, Kind: kind}
}

// IdentExpr wraps an identifier into expression position.
func IdentExpr(ident source.Ident) *Expr {
	return NewExpr(ident.Span, &ExprIdent{Ident: ident})
}

// BinaryExpr builds `lhs op rhs` with the covering span.
func BinaryExpr(lhs *Expr, op BinOp, rhs *Expr) *Expr {
	return NewExpr(lhs.Span.To(rhs.Span), &ExprBinary{Lhs: lhs, Op: op, Rhs: rhs})
}

// NumberLit builds a numeric literal expression from interned text.
func NumberLit(span source.Span, sym source.Symbol) *Expr {
	return NewExpr(span, &ExprLit{Lit: Lit{Span: span, Symbol: sym, Kind: LitNumber}})
}
