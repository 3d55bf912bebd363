package ast

import (
	"helios/internal/source"
)

// Dual traversal over the whole tree.
//
// One private walk (walk*) owns the recursion and the per-field visit
// order; it is instantiated twice through thin adapters: Walk drives a
// read-only Visitor, WalkMut drives a MutVisitor that may rewrite nodes
// in place. Both flavours therefore share the exact same order, which
// downstream passes rely on for "first error in source order".
//
// Every hook fires pre-order and returns whether to descend into the
// node's children; the provided Base/MutBase defaults descend
// everywhere, so a pass overrides only the node kinds it cares about.

// Visitor is the read-only traversal interface: one hook per node kind.
// Hooks receive pointers for efficiency but must not modify the tree;
// passes that rewrite nodes implement MutVisitor instead.
type Visitor interface {
	VisitSourceUnit(*SourceUnit) bool
	VisitItem(*Item) bool
	VisitPragma(*PragmaDirective) bool
	VisitImport(*ImportDirective) bool
	VisitUsing(*UsingDirective) bool
	VisitContract(*ItemContract) bool
	VisitFunction(*ItemFunction) bool
	VisitStruct(*ItemStruct) bool
	VisitEnum(*ItemEnum) bool
	VisitUdvt(*ItemUdvt) bool
	VisitError(*ItemError) bool
	VisitEvent(*ItemEvent) bool
	VisitVarDef(*VariableDefinition) bool
	VisitTy(*Ty) bool
	VisitFunctionHeader(*FunctionHeader) bool
	VisitModifier(*Modifier) bool
	VisitCallArgs(*CallArgs) bool
	VisitNamedArg(*NamedArg) bool
	VisitStmt(*Stmt) bool
	VisitCatchClause(*CatchClause) bool
	VisitBlock(*Block) bool
	VisitExpr(*Expr) bool
	VisitParameterList(*ParameterList) bool
	VisitLit(*Lit) bool
	VisitPath(*Path) bool
	VisitIdent(*source.Ident) bool
	VisitDocComment(*DocComment) bool
	VisitYulStmt(*YulStmt) bool
	VisitYulBlock(*YulBlock) bool
	VisitYulSwitchCase(*YulSwitchCase) bool
	VisitYulFunction(*YulFunction) bool
	VisitYulExpr(*YulExpr) bool
	VisitYulExprCall(*YulExprCall) bool
	VisitSpan(*source.Span)
}

// MutVisitor is the mutating counterpart of Visitor: identical hook
// set and traversal order, but implementations may rewrite the nodes
// they receive (replace variant payloads, renumber spans, rename
// identifiers) before or instead of descending.
type MutVisitor interface {
	MutateSourceUnit(*SourceUnit) bool
	MutateItem(*Item) bool
	MutatePragma(*PragmaDirective) bool
	MutateImport(*ImportDirective) bool
	MutateUsing(*UsingDirective) bool
	MutateContract(*ItemContract) bool
	MutateFunction(*ItemFunction) bool
	MutateStruct(*ItemStruct) bool
	MutateEnum(*ItemEnum) bool
	MutateUdvt(*ItemUdvt) bool
	MutateError(*ItemError) bool
	MutateEvent(*ItemEvent) bool
	MutateVarDef(*VariableDefinition) bool
	MutateTy(*Ty) bool
	MutateFunctionHeader(*FunctionHeader) bool
	MutateModifier(*Modifier) bool
	MutateCallArgs(*CallArgs) bool
	MutateNamedArg(*NamedArg) bool
	MutateStmt(*Stmt) bool
	MutateCatchClause(*CatchClause) bool
	MutateBlock(*Block) bool
	MutateExpr(*Expr) bool
	MutateParameterList(*ParameterList) bool
	MutateLit(*Lit) bool
	MutatePath(*Path) bool
	MutateIdent(*source.Ident) bool
	MutateDocComment(*DocComment) bool
	MutateYulStmt(*YulStmt) bool
	MutateYulBlock(*YulBlock) bool
	MutateYulSwitchCase(*YulSwitchCase) bool
	MutateYulFunction(*YulFunction) bool
	MutateYulExpr(*YulExpr) bool
	MutateYulExprCall(*YulExprCall) bool
	MutateSpan(*source.Span)
}

// Walk traverses the unit read-only.
func Walk(v Visitor, unit *SourceUnit) {
	walkSourceUnit(roHooks{v}, unit)
}

// WalkMut traverses the unit allowing in-place rewrites.
func WalkMut(v MutVisitor, unit *SourceUnit) {
	walkSourceUnit(mutHooks{v}, unit)
}

// WalkItem traverses a single item read-only.
func WalkItem(v Visitor, item *Item) {
	walkItem(roHooks{v}, item)
}

// WalkItemMut traverses a single item allowing rewrites.
func WalkItemMut(v MutVisitor, item *Item) {
	walkItem(mutHooks{v}, item)
}

// WalkStmt traverses a single statement read-only.
func WalkStmt(v Visitor, stmt *Stmt) {
	walkStmt(roHooks{v}, stmt)
}

// WalkStmtMut traverses a single statement allowing rewrites.
func WalkStmtMut(v MutVisitor, stmt *Stmt) {
	walkStmt(mutHooks{v}, stmt)
}

// WalkExpr traverses a single expression read-only.
func WalkExpr(v Visitor, expr *Expr) {
	walkExpr(roHooks{v}, expr)
}

// WalkExprMut traverses a single expression allowing rewrites.
func WalkExprMut(v MutVisitor, expr *Expr) {
	walkExpr(mutHooks{v}, expr)
}

// hooks is the shared per-kind hook set the private walk dispatches
// through; roHooks and mutHooks adapt the two public interfaces onto
// it.
type hooks interface {
	sourceUnit(*SourceUnit) bool
	item(*Item) bool
	pragma(*PragmaDirective) bool
	importDirective(*ImportDirective) bool
	usingDirective(*UsingDirective) bool
	contract(*ItemContract) bool
	function(*ItemFunction) bool
	structDef(*ItemStruct) bool
	enumDef(*ItemEnum) bool
	udvt(*ItemUdvt) bool
	errorDef(*ItemError) bool
	eventDef(*ItemEvent) bool
	varDef(*VariableDefinition) bool
	ty(*Ty) bool
	functionHeader(*FunctionHeader) bool
	modifier(*Modifier) bool
	callArgs(*CallArgs) bool
	namedArg(*NamedArg) bool
	stmt(*Stmt) bool
	catchClause(*CatchClause) bool
	block(*Block) bool
	expr(*Expr) bool
	parameterList(*ParameterList) bool
	lit(*Lit) bool
	path(*Path) bool
	ident(*source.Ident) bool
	docComment(*DocComment) bool
	yulStmt(*YulStmt) bool
	yulBlock(*YulBlock) bool
	yulSwitchCase(*YulSwitchCase) bool
	yulFunction(*YulFunction) bool
	yulExpr(*YulExpr) bool
	yulExprCall(*YulExprCall) bool
	span(*source.Span)
}

type roHooks struct{ v Visitor }

func (h roHooks) sourceUnit(n *SourceUnit) bool           { return h.v.VisitSourceUnit(n) }
func (h roHooks) item(n *Item) bool                       { return h.v.VisitItem(n) }
func (h roHooks) pragma(n *PragmaDirective) bool          { return h.v.VisitPragma(n) }
func (h roHooks) importDirective(n *ImportDirective) bool { return h.v.VisitImport(n) }
func (h roHooks) usingDirective(n *UsingDirective) bool   { return h.v.VisitUsing(n) }
func (h roHooks) contract(n *ItemContract) bool           { return h.v.VisitContract(n) }
func (h roHooks) function(n *ItemFunction) bool           { return h.v.VisitFunction(n) }
func (h roHooks) structDef(n *ItemStruct) bool            { return h.v.VisitStruct(n) }
func (h roHooks) enumDef(n *ItemEnum) bool                { return h.v.VisitEnum(n) }
func (h roHooks) udvt(n *ItemUdvt) bool                   { return h.v.VisitUdvt(n) }
func (h roHooks) errorDef(n *ItemError) bool              { return h.v.VisitError(n) }
func (h roHooks) eventDef(n *ItemEvent) bool              { return h.v.VisitEvent(n) }
func (h roHooks) varDef(n *VariableDefinition) bool       { return h.v.VisitVarDef(n) }
func (h roHooks) ty(n *Ty) bool                           { return h.v.VisitTy(n) }
func (h roHooks) functionHeader(n *FunctionHeader) bool   { return h.v.VisitFunctionHeader(n) }
func (h roHooks) modifier(n *Modifier) bool               { return h.v.VisitModifier(n) }
func (h roHooks) callArgs(n *CallArgs) bool               { return h.v.VisitCallArgs(n) }
func (h roHooks) namedArg(n *NamedArg) bool               { return h.v.VisitNamedArg(n) }
func (h roHooks) stmt(n *Stmt) bool                       { return h.v.VisitStmt(n) }
func (h roHooks) catchClause(n *CatchClause) bool         { return h.v.VisitCatchClause(n) }
func (h roHooks) block(n *Block) bool                     { return h.v.VisitBlock(n) }
func (h roHooks) expr(n *Expr) bool                       { return h.v.VisitExpr(n) }
func (h roHooks) parameterList(n *ParameterList) bool     { return h.v.VisitParameterList(n) }
func (h roHooks) lit(n *Lit) bool                         { return h.v.VisitLit(n) }
func (h roHooks) path(n *Path) bool                       { return h.v.VisitPath(n) }
func (h roHooks) ident(n *source.Ident) bool              { return h.v.VisitIdent(n) }
func (h roHooks) docComment(n *DocComment) bool           { return h.v.VisitDocComment(n) }
func (h roHooks) yulStmt(n *YulStmt) bool                 { return h.v.VisitYulStmt(n) }
func (h roHooks) yulBlock(n *YulBlock) bool               { return h.v.VisitYulBlock(n) }
func (h roHooks) yulSwitchCase(n *YulSwitchCase) bool     { return h.v.VisitYulSwitchCase(n) }
func (h roHooks) yulFunction(n *YulFunction) bool         { return h.v.VisitYulFunction(n) }
func (h roHooks) yulExpr(n *YulExpr) bool                 { return h.v.VisitYulExpr(n) }
func (h roHooks) yulExprCall(n *YulExprCall) bool         { return h.v.VisitYulExprCall(n) }
func (h roHooks) span(n *source.Span)                     { h.v.VisitSpan(n) }

type mutHooks struct{ v MutVisitor }

func (h mutHooks) sourceUnit(n *SourceUnit) bool           { return h.v.MutateSourceUnit(n) }
func (h mutHooks) item(n *Item) bool                       { return h.v.MutateItem(n) }
func (h mutHooks) pragma(n *PragmaDirective) bool          { return h.v.MutatePragma(n) }
func (h mutHooks) importDirective(n *ImportDirective) bool { return h.v.MutateImport(n) }
func (h mutHooks) usingDirective(n *UsingDirective) bool   { return h.v.MutateUsing(n) }
func (h mutHooks) contract(n *ItemContract) bool           { return h.v.MutateContract(n) }
func (h mutHooks) function(n *ItemFunction) bool           { return h.v.MutateFunction(n) }
func (h mutHooks) structDef(n *ItemStruct) bool            { return h.v.MutateStruct(n) }
func (h mutHooks) enumDef(n *ItemEnum) bool                { return h.v.MutateEnum(n) }
func (h mutHooks) udvt(n *ItemUdvt) bool                   { return h.v.MutateUdvt(n) }
func (h mutHooks) errorDef(n *ItemError) bool              { return h.v.MutateError(n) }
func (h mutHooks) eventDef(n *ItemEvent) bool              { return h.v.MutateEvent(n) }
func (h mutHooks) varDef(n *VariableDefinition) bool       { return h.v.MutateVarDef(n) }
func (h mutHooks) ty(n *Ty) bool                           { return h.v.MutateTy(n) }
func (h mutHooks) functionHeader(n *FunctionHeader) bool   { return h.v.MutateFunctionHeader(n) }
func (h mutHooks) modifier(n *Modifier) bool               { return h.v.MutateModifier(n) }
func (h mutHooks) callArgs(n *CallArgs) bool               { return h.v.MutateCallArgs(n) }
func (h mutHooks) namedArg(n *NamedArg) bool               { return h.v.MutateNamedArg(n) }
func (h mutHooks) stmt(n *Stmt) bool                       { return h.v.MutateStmt(n) }
func (h mutHooks) catchClause(n *CatchClause) bool         { return h.v.MutateCatchClause(n) }
func (h mutHooks) block(n *Block) bool                     { return h.v.MutateBlock(n) }
func (h mutHooks) expr(n *Expr) bool                       { return h.v.MutateExpr(n) }
func (h mutHooks) parameterList(n *ParameterList) bool     { return h.v.MutateParameterList(n) }
func (h mutHooks) lit(n *Lit) bool                         { return h.v.MutateLit(n) }
func (h mutHooks) path(n *Path) bool                       { return h.v.MutatePath(n) }
func (h mutHooks) ident(n *source.Ident) bool              { return h.v.MutateIdent(n) }
func (h mutHooks) docComment(n *DocComment) bool           { return h.v.MutateDocComment(n) }
func (h mutHooks) yulStmt(n *YulStmt) bool                 { return h.v.MutateYulStmt(n) }
func (h mutHooks) yulBlock(n *YulBlock) bool               { return h.v.MutateYulBlock(n) }
func (h mutHooks) yulSwitchCase(n *YulSwitchCase) bool     { return h.v.MutateYulSwitchCase(n) }
func (h mutHooks) yulFunction(n *YulFunction) bool         { return h.v.MutateYulFunction(n) }
func (h mutHooks) yulExpr(n *YulExpr) bool                 { return h.v.MutateYulExpr(n) }
func (h mutHooks) yulExprCall(n *YulExprCall) bool         { return h.v.MutateYulExprCall(n) }
func (h mutHooks) span(n *source.Span)                     { h.v.MutateSpan(n) }

// The single walk implementation. Order is load-bearing: left operands
// before right, conditions before bodies, bodies before else/catch
// branches, declaration order everywhere else.

func walkSourceUnit(h hooks, n *SourceUnit) {
	if !h.sourceUnit(n) {
		return
	}
	for _, item := range n.Items {
		walkItem(h, item)
	}
}

func walkItem(h hooks, n *Item) {
	if !h.item(n) {
		return
	}
	h.span(&n.Span)
	for i := range n.Docs {
		walkDocComment(h, &n.Docs[i])
	}
	switch k := n.Kind.(type) {
	case *PragmaDirective:
		walkPragma(h, k)
	case *ImportDirective:
		walkImport(h, k)
	case *UsingDirective:
		walkUsing(h, k)
	case *ItemContract:
		walkContract(h, k)
	case *ItemFunction:
		walkFunction(h, k)
	case *VariableDefinition:
		walkVarDef(h, k)
	case *ItemStruct:
		walkStruct(h, k)
	case *ItemEnum:
		walkEnum(h, k)
	case *ItemUdvt:
		walkUdvt(h, k)
	case *ItemError:
		walkErrorDef(h, k)
	case *ItemEvent:
		walkEventDef(h, k)
	}
}

func walkPragma(h hooks, n *PragmaDirective) {
	// Tokens are raw; nothing to descend into.
	h.pragma(n)
}

func walkImport(h hooks, n *ImportDirective) {
	if !h.importDirective(n) {
		return
	}
	switch items := n.Items.(type) {
	case *ImportPlain:
		if items.Alias != nil {
			walkIdent(h, items.Alias)
		}
	case *ImportAliases:
		for i := range items.Imports {
			walkIdent(h, &items.Imports[i].Name)
			if alias := items.Imports[i].Alias; alias != nil {
				walkIdent(h, alias)
			}
		}
	case *ImportGlob:
		if items.Alias != nil {
			walkIdent(h, items.Alias)
		}
	}
}

func walkUsing(h hooks, n *UsingDirective) {
	if !h.usingDirective(n) {
		return
	}
	switch list := n.List.(type) {
	case *UsingSingle:
		walkPath(h, &list.Path)
	case *UsingMultiple:
		for i := range list.Items {
			walkPath(h, &list.Items[i].Path)
		}
	}
	if n.Ty != nil {
		walkTy(h, n.Ty)
	}
}

func walkContract(h hooks, n *ItemContract) {
	if !h.contract(n) {
		return
	}
	walkIdent(h, &n.Name)
	for i := range n.Inheritance {
		walkModifier(h, &n.Inheritance[i])
	}
	for _, item := range n.Body {
		walkItem(h, item)
	}
}

func walkFunction(h hooks, n *ItemFunction) {
	if !h.function(n) {
		return
	}
	walkFunctionHeader(h, &n.Header)
	if n.Body != nil {
		walkBlock(h, n.Body)
	}
}

func walkStruct(h hooks, n *ItemStruct) {
	if !h.structDef(n) {
		return
	}
	walkIdent(h, &n.Name)
	for _, field := range n.Fields {
		walkVarDef(h, field)
	}
}

func walkEnum(h hooks, n *ItemEnum) {
	if !h.enumDef(n) {
		return
	}
	walkIdent(h, &n.Name)
	for i := range n.Variants {
		walkIdent(h, &n.Variants[i])
	}
}

func walkUdvt(h hooks, n *ItemUdvt) {
	if !h.udvt(n) {
		return
	}
	walkIdent(h, &n.Name)
	walkTy(h, &n.Ty)
}

func walkErrorDef(h hooks, n *ItemError) {
	if !h.errorDef(n) {
		return
	}
	walkIdent(h, &n.Name)
	walkParameterList(h, &n.Parameters)
}

func walkEventDef(h hooks, n *ItemEvent) {
	if !h.eventDef(n) {
		return
	}
	walkIdent(h, &n.Name)
	walkParameterList(h, &n.Parameters)
}

func walkVarDef(h hooks, n *VariableDefinition) {
	if !h.varDef(n) {
		return
	}
	h.span(&n.Span)
	walkTy(h, &n.Ty)
	if n.Name != nil {
		walkIdent(h, n.Name)
	}
	if n.Initializer != nil {
		walkExpr(h, n.Initializer)
	}
}

func walkTy(h hooks, n *Ty) {
	if !h.ty(n) {
		return
	}
	h.span(&n.Span)
	switch k := n.Kind.(type) {
	case *TyArray:
		// Array sizes are constant expressions owned by the type; they
		// stay out of the expression traversal.
		walkTy(h, k.Elem)
	case *TyFunction:
		walkFunctionHeader(h, &k.Header)
	case *TyMapping:
		walkTy(h, k.Key)
		if k.KeyName != nil {
			walkIdent(h, k.KeyName)
		}
		walkTy(h, k.Value)
		if k.ValueName != nil {
			walkIdent(h, k.ValueName)
		}
	case *TyCustom:
		walkPath(h, &k.Path)
	}
}

func walkFunctionHeader(h hooks, n *FunctionHeader) {
	if !h.functionHeader(n) {
		return
	}
	if n.Name != nil {
		walkIdent(h, n.Name)
	}
	walkParameterList(h, &n.Parameters)
	for i := range n.Modifiers {
		walkModifier(h, &n.Modifiers[i])
	}
	walkParameterList(h, &n.Returns)
}

func walkModifier(h hooks, n *Modifier) {
	if !h.modifier(n) {
		return
	}
	walkPath(h, &n.Name)
	walkCallArgs(h, &n.Arguments)
}

func walkCallArgs(h hooks, n *CallArgs) {
	if !h.callArgs(n) {
		return
	}
	if n.IsNamed() {
		for i := range n.Named {
			walkNamedArg(h, &n.Named[i])
		}
		return
	}
	for _, arg := range n.Unnamed {
		walkExpr(h, arg)
	}
}

func walkNamedArg(h hooks, n *NamedArg) {
	if !h.namedArg(n) {
		return
	}
	walkIdent(h, &n.Name)
	walkExpr(h, n.Value)
}

func walkStmt(h hooks, n *Stmt) {
	if !h.stmt(n) {
		return
	}
	for i := range n.Docs {
		walkDocComment(h, &n.Docs[i])
	}
	h.span(&n.Span)
	switch k := n.Kind.(type) {
	case *StmtAssembly:
		walkYulBlock(h, &k.Block)
	case *StmtDeclSingle:
		walkVarDef(h, &k.Var)
	case *StmtDeclMulti:
		for _, v := range k.Vars {
			if v != nil {
				walkVarDef(h, v)
			}
		}
		walkExpr(h, k.Expr)
	case *StmtBlock:
		walkBlock(h, &k.Block)
	case *StmtBreak, *StmtContinue:
		// Leaves.
	case *StmtDoWhile:
		walkBlock(h, &k.Body)
		walkExpr(h, k.Cond)
	case *StmtEmit:
		walkPath(h, &k.Path)
		walkCallArgs(h, &k.Args)
	case *StmtExpr:
		walkExpr(h, k.Expr)
	case *StmtFor:
		if k.Init != nil {
			walkStmt(h, k.Init)
		}
		if k.Cond != nil {
			walkExpr(h, k.Cond)
		}
		if k.Next != nil {
			walkExpr(h, k.Next)
		}
		walkStmt(h, k.Body)
	case *StmtIf:
		walkExpr(h, k.Cond)
		walkStmt(h, k.Then)
		if k.Else != nil {
			walkStmt(h, k.Else)
		}
	case *StmtReturn:
		if k.Expr != nil {
			walkExpr(h, k.Expr)
		}
	case *StmtRevert:
		walkPath(h, &k.Path)
		walkCallArgs(h, &k.Args)
	case *StmtTry:
		walkExpr(h, k.Expr)
		walkParameterList(h, &k.Returns)
		walkBlock(h, &k.Block)
		for i := range k.Catch {
			walkCatchClause(h, &k.Catch[i])
		}
	case *StmtUnchecked:
		walkBlock(h, &k.Block)
	case *StmtWhile:
		walkExpr(h, k.Cond)
		walkStmt(h, k.Body)
	}
}

func walkCatchClause(h hooks, n *CatchClause) {
	if !h.catchClause(n) {
		return
	}
	if n.Name != nil {
		walkIdent(h, n.Name)
	}
	walkParameterList(h, &n.Args)
	walkBlock(h, &n.Block)
}

func walkBlock(h hooks, n *Block) {
	if !h.block(n) {
		return
	}
	for _, stmt := range *n {
		walkStmt(h, stmt)
	}
}

func walkExpr(h hooks, n *Expr) {
	if !h.expr(n) {
		return
	}
	h.span(&n.Span)
	switch k := n.Kind.(type) {
	case *ExprArray:
		for _, e := range k.Elems {
			walkExpr(h, e)
		}
	case *ExprAssign:
		walkExpr(h, k.Lhs)
		walkExpr(h, k.Rhs)
	case *ExprBinary:
		walkExpr(h, k.Lhs)
		walkExpr(h, k.Rhs)
	case *ExprCall:
		walkExpr(h, k.Callee)
		walkCallArgs(h, &k.Args)
	case *ExprCallOptions:
		walkExpr(h, k.Callee)
		for i := range k.Opts {
			walkNamedArg(h, &k.Opts[i])
		}
	case *ExprDelete:
		walkExpr(h, k.Expr)
	case *ExprIdent:
		walkIdent(h, &k.Ident)
	case *ExprIndex:
		walkExpr(h, k.Expr)
		if k.Index != nil {
			walkExpr(h, k.Index)
		}
	case *ExprSlice:
		walkExpr(h, k.Expr)
		if k.Start != nil {
			walkExpr(h, k.Start)
		}
		if k.End != nil {
			walkExpr(h, k.End)
		}
	case *ExprLit:
		walkLit(h, &k.Lit)
	case *ExprMember:
		walkExpr(h, k.Expr)
		walkIdent(h, &k.Member)
	case *ExprNew:
		walkTy(h, &k.Ty)
	case *ExprPayable:
		walkCallArgs(h, &k.Args)
	case *ExprTernary:
		walkExpr(h, k.Cond)
		walkExpr(h, k.Then)
		walkExpr(h, k.Else)
	case *ExprTuple:
		for _, e := range k.Elems {
			if e != nil {
				walkExpr(h, e)
			}
		}
	case *ExprTypeCall:
		walkTy(h, &k.Ty)
	case *ExprType:
		walkTy(h, &k.Ty)
	case *ExprUnary:
		walkExpr(h, k.Expr)
	}
}

func walkParameterList(h hooks, n *ParameterList) {
	if !h.parameterList(n) {
		return
	}
	for _, param := range *n {
		walkVarDef(h, param)
	}
}

func walkLit(h hooks, n *Lit) {
	if !h.lit(n) {
		return
	}
	h.span(&n.Span)
}

func walkPath(h hooks, n *Path) {
	if !h.path(n) {
		return
	}
	for i := range *n {
		walkIdent(h, &(*n)[i])
	}
}

func walkIdent(h hooks, n *source.Ident) {
	if !h.ident(n) {
		return
	}
	h.span(&n.Span)
}

func walkDocComment(h hooks, n *DocComment) {
	if !h.docComment(n) {
		return
	}
	h.span(&n.Span)
}

func walkYulStmt(h hooks, n *YulStmt) {
	if !h.yulStmt(n) {
		return
	}
	for i := range n.Docs {
		walkDocComment(h, &n.Docs[i])
	}
	h.span(&n.Span)
	switch k := n.Kind.(type) {
	case *YulStmtBlock:
		walkYulBlock(h, &k.Block)
	case *YulStmtAssignSingle:
		walkPath(h, &k.Path)
		walkYulExpr(h, k.Expr)
	case *YulStmtAssignMulti:
		for i := range k.Paths {
			walkPath(h, &k.Paths[i])
		}
		walkYulExprCall(h, &k.Call)
	case *YulStmtExpr:
		walkYulExprCall(h, &k.Call)
	case *YulStmtIf:
		walkYulExpr(h, k.Cond)
		walkYulBlock(h, &k.Body)
	case *YulStmtFor:
		walkYulBlock(h, &k.Init)
		walkYulExpr(h, k.Cond)
		walkYulBlock(h, &k.Step)
		walkYulBlock(h, &k.Body)
	case *YulStmtSwitch:
		walkYulExpr(h, k.Selector)
		for i := range k.Cases {
			walkYulSwitchCase(h, &k.Cases[i])
		}
		if k.Default != nil {
			walkYulBlock(h, &k.Default)
		}
	case *YulStmtLeave, *YulStmtBreak, *YulStmtContinue:
		// Leaves.
	case *YulFunction:
		walkYulFunction(h, k)
	case *YulStmtVarDecl:
		for i := range k.Idents {
			walkIdent(h, &k.Idents[i])
		}
		if k.Expr != nil {
			walkYulExpr(h, k.Expr)
		}
	}
}

func walkYulBlock(h hooks, n *YulBlock) {
	if !h.yulBlock(n) {
		return
	}
	for _, stmt := range *n {
		walkYulStmt(h, stmt)
	}
}

func walkYulSwitchCase(h hooks, n *YulSwitchCase) {
	if !h.yulSwitchCase(n) {
		return
	}
	walkLit(h, &n.Constant)
	walkYulBlock(h, &n.Body)
}

func walkYulFunction(h hooks, n *YulFunction) {
	if !h.yulFunction(n) {
		return
	}
	walkIdent(h, &n.Name)
	for i := range n.Parameters {
		walkIdent(h, &n.Parameters[i])
	}
	for i := range n.Returns {
		walkIdent(h, &n.Returns[i])
	}
	walkYulBlock(h, &n.Body)
}

func walkYulExpr(h hooks, n *YulExpr) {
	if !h.yulExpr(n) {
		return
	}
	h.span(&n.Span)
	switch k := n.Kind.(type) {
	case *YulExprPath:
		walkPath(h, &k.Path)
	case *YulExprCall:
		walkYulExprCall(h, k)
	case *YulExprLit:
		walkLit(h, &k.Lit)
	}
}

func walkYulExprCall(h hooks, n *YulExprCall) {
	if !h.yulExprCall(n) {
		return
	}
	walkIdent(h, &n.Name)
	for _, arg := range n.Arguments {
		walkYulExpr(h, arg)
	}
}
