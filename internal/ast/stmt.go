package ast

import (
	"helios/internal/source"
)

// Stmt is one statement: doc comments, a span and a tagged payload.
type Stmt struct {
	Docs DocComments
	Span source.Span
	Kind StmtKind
}

// StmtKind is the closed set of statement payloads.
type StmtKind interface{ stmtKind() }

func (*StmtAssembly) stmtKind()   {}
func (*StmtDeclSingle) stmtKind() {}
func (*StmtDeclMulti) stmtKind()  {}
func (*StmtBlock) stmtKind()      {}
func (*StmtBreak) stmtKind()      {}
func (*StmtContinue) stmtKind()   {}
func (*StmtDoWhile) stmtKind()    {}
func (*StmtEmit) stmtKind()       {}
func (*StmtExpr) stmtKind()       {}
func (*StmtFor) stmtKind()        {}
func (*StmtIf) stmtKind()         {}
func (*StmtReturn) stmtKind()     {}
func (*StmtRevert) stmtKind()     {}
func (*StmtTry) stmtKind()        {}
func (*StmtUnchecked) stmtKind()  {}
func (*StmtWhile) stmtKind()      {}

// Block is a braced statement list.
type Block []*Stmt

// StmtAssembly is the single bridge into the Yul sub-language:
// `assembly "evmasm" ("memory-safe") { ... }`.
type StmtAssembly struct {
	// Dialect is nil when unspecified; today only "evmasm" exists.
	Dialect *StrLit
	Flags   []StrLit
	Block   YulBlock
}

// StmtDeclSingle is `uint x = 1;`.
type StmtDeclSingle struct {
	Var VariableDefinition
}

// StmtDeclMulti is `(uint a, , uint c) = expr;`; skipped positions are
// nil.
type StmtDeclMulti struct {
	Vars []*VariableDefinition
	Expr *Expr
}

// StmtBlock is a nested `{ ... }`.
type StmtBlock struct {
	Block Block
}

type StmtBreak struct{}

type StmtContinue struct{}

// StmtDoWhile is `do body while (cond);`.
type StmtDoWhile struct {
	Body Block
	Cond *Expr
}

// StmtEmit is `emit Event(args);`.
type StmtEmit struct {
	Path Path
	Args CallArgs
}

// StmtExpr is an expression statement.
type StmtExpr struct {
	Expr *Expr
}

// StmtFor is `for (init; cond; next) body`; any header slot may be nil.
type StmtFor struct {
	Init *Stmt
	Cond *Expr
	Next *Expr
	Body *Stmt
}

// StmtIf is `if (cond) then else els`; Else is nil when absent.
type StmtIf struct {
	Cond *Expr
	Then *Stmt
	Else *Stmt
}

// StmtReturn is `return expr?;`.
type StmtReturn struct {
	Expr *Expr
}

// StmtRevert is `revert Error(args);`.
type StmtRevert struct {
	Path Path
	Args CallArgs
}

// StmtTry is `try expr returns (...) { } catch ... { }`.
type StmtTry struct {
	Expr    *Expr
	Returns ParameterList
	Block   Block
	Catch   []CatchClause
}

// CatchClause is one `catch Name?(args) { }` arm.
type CatchClause struct {
	Name  *source.Ident
	Args  ParameterList
	Block Block
}

// StmtUnchecked is `unchecked { ... }`.
type StmtUnchecked struct {
	Block Block
}

// StmtWhile is `while (cond) body`.
type StmtWhile struct {
	Cond *Expr
	Body *Stmt
}
