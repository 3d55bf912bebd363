package ast

import (
	"helios/internal/source"
)

// The Yul inline-assembly grammar. It is structurally parallel to the
// main grammar but self-contained: the only bridge from the outer
// language is StmtAssembly, and no Yul node embeds an outer Stmt or
// Expr.

// YulStmt is one Yul statement.
type YulStmt struct {
	Docs DocComments
	Span source.Span
	Kind YulStmtKind
}

// YulStmtKind is the closed set of Yul statement payloads.
type YulStmtKind interface{ yulStmtKind() }

func (*YulStmtBlock) yulStmtKind()        {}
func (*YulStmtAssignSingle) yulStmtKind() {}
func (*YulStmtAssignMulti) yulStmtKind()  {}
func (*YulStmtExpr) yulStmtKind()         {}
func (*YulStmtIf) yulStmtKind()           {}
func (*YulStmtFor) yulStmtKind()          {}
func (*YulStmtSwitch) yulStmtKind()       {}
func (*YulStmtLeave) yulStmtKind()        {}
func (*YulStmtBreak) yulStmtKind()        {}
func (*YulStmtContinue) yulStmtKind()     {}
func (*YulFunction) yulStmtKind()         {}
func (*YulStmtVarDecl) yulStmtKind()      {}

// YulBlock is `{ ... }` in Yul.
type YulBlock []*YulStmt

// YulStmtBlock is a nested block statement.
type YulStmtBlock struct {
	Block YulBlock
}

// YulStmtAssignSingle is `path := expr`.
type YulStmtAssignSingle struct {
	Path Path
	Expr *YulExpr
}

// YulStmtAssignMulti is `a, b := f()`.
type YulStmtAssignMulti struct {
	Paths []Path
	Call  YulExprCall
}

// YulStmtExpr is a bare call used for its effects.
type YulStmtExpr struct {
	Call YulExprCall
}

// YulStmtIf is `if cond { body }` (no else in Yul).
type YulStmtIf struct {
	Cond *YulExpr
	Body YulBlock
}

// YulStmtFor is `for { init } cond { step } { body }`.
type YulStmtFor struct {
	Init YulBlock
	Cond *YulExpr
	Step YulBlock
	Body YulBlock
}

// YulStmtSwitch is `switch selector case ... default ...`. A switch
// with neither cases nor default is malformed; the parser reports it.
type YulStmtSwitch struct {
	Selector *YulExpr
	Cases    []YulSwitchCase
	// Default is nil when no default branch is present.
	Default YulBlock
}

// YulSwitchCase is one `case <lit> { body }` arm.
type YulSwitchCase struct {
	Constant Lit
	Body     YulBlock
}

type YulStmtLeave struct{}

type YulStmtBreak struct{}

type YulStmtContinue struct{}

// YulFunction is `function name(params) -> returns { body }`. It is
// both a statement payload and the shape hooked by the traversal.
type YulFunction struct {
	Name       source.Ident
	Parameters []source.Ident
	Returns    []source.Ident
	Body       YulBlock
}

// YulStmtVarDecl is `let a, b := expr?`.
type YulStmtVarDecl struct {
	Idents []source.Ident
	Expr   *YulExpr
}

// YulExpr is one Yul expression.
type YulExpr struct {
	Span source.Span
	Kind YulExprKind
}

// YulExprKind is the closed set of Yul expression payloads.
type YulExprKind interface{ yulExprKind() }

func (*YulExprPath) yulExprKind() {}
func (*YulExprCall) yulExprKind() {}
func (*YulExprLit) yulExprKind()  {}

// YulExprPath references a variable or builtin by path.
type YulExprPath struct {
	Path Path
}

// YulExprCall is `name(args)`.
type YulExprCall struct {
	Name      source.Ident
	Arguments []*YulExpr
}

// YulExprLit is a literal in Yul position.
type YulExprLit struct {
	Lit Lit
}
