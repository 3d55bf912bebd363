package ast

import (
	"helios/internal/source"
)

// Base is the default read-only visitor: every hook descends and does
// nothing else. Embed it and override the node kinds a pass cares
// about.
type Base struct{}

var _ Visitor = Base{}

func (Base) VisitSourceUnit(*SourceUnit) bool         { return true }
func (Base) VisitItem(*Item) bool                     { return true }
func (Base) VisitPragma(*PragmaDirective) bool        { return true }
func (Base) VisitImport(*ImportDirective) bool        { return true }
func (Base) VisitUsing(*UsingDirective) bool          { return true }
func (Base) VisitContract(*ItemContract) bool         { return true }
func (Base) VisitFunction(*ItemFunction) bool         { return true }
func (Base) VisitStruct(*ItemStruct) bool             { return true }
func (Base) VisitEnum(*ItemEnum) bool                 { return true }
func (Base) VisitUdvt(*ItemUdvt) bool                 { return true }
func (Base) VisitError(*ItemError) bool               { return true }
func (Base) VisitEvent(*ItemEvent) bool               { return true }
func (Base) VisitVarDef(*VariableDefinition) bool     { return true }
func (Base) VisitTy(*Ty) bool                         { return true }
func (Base) VisitFunctionHeader(*FunctionHeader) bool { return true }
func (Base) VisitModifier(*Modifier) bool             { return true }
func (Base) VisitCallArgs(*CallArgs) bool             { return true }
func (Base) VisitNamedArg(*NamedArg) bool             { return true }
func (Base) VisitStmt(*Stmt) bool                     { return true }
func (Base) VisitCatchClause(*CatchClause) bool       { return true }
func (Base) VisitBlock(*Block) bool                   { return true }
func (Base) VisitExpr(*Expr) bool                     { return true }
func (Base) VisitParameterList(*ParameterList) bool   { return true }
func (Base) VisitLit(*Lit) bool                       { return true }
func (Base) VisitPath(*Path) bool                     { return true }
func (Base) VisitIdent(*source.Ident) bool            { return true }
func (Base) VisitDocComment(*DocComment) bool         { return true }
func (Base) VisitYulStmt(*YulStmt) bool               { return true }
func (Base) VisitYulBlock(*YulBlock) bool             { return true }
func (Base) VisitYulSwitchCase(*YulSwitchCase) bool   { return true }
func (Base) VisitYulFunction(*YulFunction) bool       { return true }
func (Base) VisitYulExpr(*YulExpr) bool               { return true }
func (Base) VisitYulExprCall(*YulExprCall) bool       { return true }
func (Base) VisitSpan(*source.Span)                   {}

// MutBase is the default mutating visitor: identical traversal to
// Base, mutating nothing until a pass overrides a hook.
type MutBase struct{}

var _ MutVisitor = MutBase{}

func (MutBase) MutateSourceUnit(*SourceUnit) bool         { return true }
func (MutBase) MutateItem(*Item) bool                     { return true }
func (MutBase) MutatePragma(*PragmaDirective) bool        { return true }
func (MutBase) MutateImport(*ImportDirective) bool        { return true }
func (MutBase) MutateUsing(*UsingDirective) bool          { return true }
func (MutBase) MutateContract(*ItemContract) bool         { return true }
func (MutBase) MutateFunction(*ItemFunction) bool         { return true }
func (MutBase) MutateStruct(*ItemStruct) bool             { return true }
func (MutBase) MutateEnum(*ItemEnum) bool                 { return true }
func (MutBase) MutateUdvt(*ItemUdvt) bool                 { return true }
func (MutBase) MutateError(*ItemError) bool               { return true }
func (MutBase) MutateEvent(*ItemEvent) bool               { return true }
func (MutBase) MutateVarDef(*VariableDefinition) bool     { return true }
func (MutBase) MutateTy(*Ty) bool                         { return true }
func (MutBase) MutateFunctionHeader(*FunctionHeader) bool { return true }
func (MutBase) MutateModifier(*Modifier) bool             { return true }
func (MutBase) MutateCallArgs(*CallArgs) bool             { return true }
func (MutBase) MutateNamedArg(*NamedArg) bool             { return true }
func (MutBase) MutateStmt(*Stmt) bool                     { return true }
func (MutBase) MutateCatchClause(*CatchClause) bool       { return true }
func (MutBase) MutateBlock(*Block) bool                   { return true }
func (MutBase) MutateExpr(*Expr) bool                     { return true }
func (MutBase) MutateParameterList(*ParameterList) bool   { return true }
func (MutBase) MutateLit(*Lit) bool                       { return true }
func (MutBase) MutatePath(*Path) bool                     { return true }
func (MutBase) MutateIdent(*source.Ident) bool            { return true }
func (MutBase) MutateDocComment(*DocComment) bool         { return true }
func (MutBase) MutateYulStmt(*YulStmt) bool               { return true }
func (MutBase) MutateYulBlock(*YulBlock) bool             { return true }
func (MutBase) MutateYulSwitchCase(*YulSwitchCase) bool   { return true }
func (MutBase) MutateYulFunction(*YulFunction) bool       { return true }
func (MutBase) MutateYulExpr(*YulExpr) bool               { return true }
func (MutBase) MutateYulExprCall(*YulExprCall) bool       { return true }
func (MutBase) MutateSpan(*source.Span)                   {}
