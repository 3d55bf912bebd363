package ast_test

import (
	"fmt"
	"reflect"
	"testing"

	"helios/internal/ast"
	"helios/internal/source"
)

func sp(lo, hi uint32) source.Span {
	return source.NewSpan(source.BytePos(lo), source.BytePos(hi))
}

func ident(in *source.Interner, name string, lo, hi uint32) source.Ident {
	return source.NewIdent(in.Intern(name), sp(lo, hi))
}

// buildUnit constructs a source unit exercising every major node
// family: pragma, import, contract, state variable, function with
// statements and expressions, and an inline assembly block.
func buildUnit(in *source.Interner) *ast.SourceUnit {
	aVar := ident(in, "x", 60, 61)
	counter := &ast.VariableDefinition{
		Span:        sp(55, 75),
		Ty:          ast.Ty{Span: sp(55, 59), Kind: &ast.TyUInt{N: 256}},
		Name:        &aVar,
		Initializer: ast.NumberLit(sp(64, 65), in.Intern("0")),
	}

	retName := ident(in, "f", 80, 81)
	body := ast.Block{
		ast.NewStmt(sp(90, 120), &ast.StmtIf{
			Cond: ast.IdentExpr(ident(in, "cond", 93, 97)),
			Then: ast.NewStmt(sp(99, 110), &ast.StmtReturn{
				Expr: ast.NumberLit(sp(106, 107), in.Intern("1")),
			}),
		}),
		ast.NewStmt(sp(122, 160), &ast.StmtAssembly{
			Block: ast.YulBlock{
				{
					Span: sp(130, 145),
					Kind: &ast.YulStmtVarDecl{
						Idents: []source.Ident{ident(in, "y", 134, 135)},
						Expr: &ast.YulExpr{
							Span: sp(139, 144),
							Kind: &ast.YulExprCall{
								Name: ident(in, "add", 139, 142),
								Arguments: []*ast.YulExpr{
									{Span: sp(143, 144), Kind: &ast.YulExprLit{
										Lit: ast.Lit{Span: sp(143, 144), Symbol: in.Intern("1"), Kind: ast.LitNumber},
									}},
								},
							},
						},
					},
				},
			},
		}),
	}
	fn := &ast.ItemFunction{
		Kind: ast.FnFunction,
		Header: ast.FunctionHeader{
			Name:       &retName,
			Visibility: ast.VisibilityPublic,
		},
		Body: &body,
	}

	contract := &ast.ItemContract{
		Kind: ast.ContractPlain,
		Name: ident(in, "Counter", 40, 47),
		Body: []*ast.Item{
			ast.NewItem(sp(55, 76), counter),
			ast.NewItem(sp(80, 161), fn),
		},
	}

	return &ast.SourceUnit{Items: []*ast.Item{
		ast.NewItem(sp(0, 23), &ast.PragmaDirective{Tokens: []ast.PragmaToken{
			{Symbol: source.SymSolidity, Span: sp(7, 15)},
		}}),
		ast.NewItem(sp(24, 38), &ast.ImportDirective{
			Path:  ast.StrLit{Span: sp(31, 37), Value: in.Intern("./a.sol")},
			Items: &ast.ImportPlain{},
		}),
		ast.NewItem(sp(40, 162), contract),
	}}
}

// trace records one event string per hook firing, so the read-only and
// mutating traversals can be compared event for event.
type trace struct {
	events []string
}

func (t *trace) hit(kind string, span source.Span) bool {
	t.events = append(t.events, fmt.Sprintf("%s %s", kind, span))
	return true
}

type roRecorder struct {
	ast.Base
	trace *trace
}

func (r roRecorder) VisitItem(n *ast.Item) bool       { return r.trace.hit("item", n.Span) }
func (r roRecorder) VisitStmt(n *ast.Stmt) bool       { return r.trace.hit("stmt", n.Span) }
func (r roRecorder) VisitExpr(n *ast.Expr) bool       { return r.trace.hit("expr", n.Span) }
func (r roRecorder) VisitTy(n *ast.Ty) bool           { return r.trace.hit("ty", n.Span) }
func (r roRecorder) VisitLit(n *ast.Lit) bool         { return r.trace.hit("lit", n.Span) }
func (r roRecorder) VisitYulStmt(n *ast.YulStmt) bool { return r.trace.hit("yulstmt", n.Span) }
func (r roRecorder) VisitYulExpr(n *ast.YulExpr) bool { return r.trace.hit("yulexpr", n.Span) }
func (r roRecorder) VisitIdent(n *source.Ident) bool  { return r.trace.hit("ident", n.Span) }
func (r roRecorder) VisitContract(n *ast.ItemContract) bool {
	return r.trace.hit("contract", n.Name.Span)
}
func (r roRecorder) VisitFunction(n *ast.ItemFunction) bool {
	return r.trace.hit("function", source.DummySpan)
}
func (r roRecorder) VisitVarDef(n *ast.VariableDefinition) bool { return r.trace.hit("vardef", n.Span) }

type mutRecorder struct {
	ast.MutBase
	trace *trace
}

func (r mutRecorder) MutateItem(n *ast.Item) bool       { return r.trace.hit("item", n.Span) }
func (r mutRecorder) MutateStmt(n *ast.Stmt) bool       { return r.trace.hit("stmt", n.Span) }
func (r mutRecorder) MutateExpr(n *ast.Expr) bool       { return r.trace.hit("expr", n.Span) }
func (r mutRecorder) MutateTy(n *ast.Ty) bool           { return r.trace.hit("ty", n.Span) }
func (r mutRecorder) MutateLit(n *ast.Lit) bool         { return r.trace.hit("lit", n.Span) }
func (r mutRecorder) MutateYulStmt(n *ast.YulStmt) bool { return r.trace.hit("yulstmt", n.Span) }
func (r mutRecorder) MutateYulExpr(n *ast.YulExpr) bool { return r.trace.hit("yulexpr", n.Span) }
func (r mutRecorder) MutateIdent(n *source.Ident) bool  { return r.trace.hit("ident", n.Span) }
func (r mutRecorder) MutateContract(n *ast.ItemContract) bool {
	return r.trace.hit("contract", n.Name.Span)
}
func (r mutRecorder) MutateFunction(n *ast.ItemFunction) bool {
	return r.trace.hit("function", source.DummySpan)
}
func (r mutRecorder) MutateVarDef(n *ast.VariableDefinition) bool {
	return r.trace.hit("vardef", n.Span)
}

func TestWalkAndWalkMutVisitSameNodesInSameOrder(t *testing.T) {
	in := source.NewInterner()
	unit := buildUnit(in)

	ro := &trace{}
	ast.Walk(roRecorder{trace: ro}, unit)

	mut := &trace{}
	ast.WalkMut(mutRecorder{trace: mut}, unit)

	if len(ro.events) == 0 {
		t.Fatal("read-only traversal recorded nothing")
	}
	if !reflect.DeepEqual(ro.events, mut.events) {
		t.Errorf("traversals diverge:\nro:  %v\nmut: %v", ro.events, mut.events)
	}
}

func TestWalkExprOrder(t *testing.T) {
	in := source.NewInterner()
	// a + b * c with source positions a=[1,2) b=[5,6) c=[9,10).
	a := ast.IdentExpr(ident(in, "a", 1, 2))
	b := ast.IdentExpr(ident(in, "b", 5, 6))
	c := ast.IdentExpr(ident(in, "c", 9, 10))
	mul := ast.BinaryExpr(b, ast.BinOp{Span: sp(7, 8), Kind: ast.BinOpMul}, c)
	add := ast.BinaryExpr(a, ast.BinOp{Span: sp(3, 4), Kind: ast.BinOpAdd}, mul)

	tr := &trace{}
	ast.WalkExpr(roRecorder{trace: tr}, add)

	want := []string{
		"expr 1..10", // a + b * c
		"expr 1..2",  // a
		"ident 1..2",
		"expr 5..10", // b * c
		"expr 5..6",  // b
		"ident 5..6",
		"expr 9..10", // c
		"ident 9..10",
	}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("traversal order:\ngot:  %v\nwant: %v", tr.events, want)
	}
}

type pruner struct {
	ast.Base
	prune  source.Span
	events []string
}

func (p *pruner) VisitExpr(n *ast.Expr) bool {
	p.events = append(p.events, n.Span.String())
	return n.Span != p.prune
}

func TestWalkFalseSkipsChildren(t *testing.T) {
	in := source.NewInterner()
	b := ast.IdentExpr(ident(in, "b", 5, 6))
	c := ast.IdentExpr(ident(in, "c", 9, 10))
	mul := ast.BinaryExpr(b, ast.BinOp{Span: sp(7, 8), Kind: ast.BinOpMul}, c)
	add := ast.BinaryExpr(ast.IdentExpr(ident(in, "a", 1, 2)), ast.BinOp{Span: sp(3, 4), Kind: ast.BinOpAdd}, mul)

	p := &pruner{prune: sp(5, 10)}
	ast.WalkExpr(p, add)

	want := []string{"1..10", "1..2", "5..10"} // b and c pruned
	if !reflect.DeepEqual(p.events, want) {
		t.Errorf("pruned traversal: got %v, want %v", p.events, want)
	}
}

func TestWalkArraySizeStaysOutOfExprTraversal(t *testing.T) {
	in := source.NewInterner()
	arr := ast.Ty{
		Span: sp(1, 10),
		Kind: &ast.TyArray{
			Elem: &ast.Ty{Span: sp(1, 5), Kind: &ast.TyUInt{N: 8}},
			Size: ast.NumberLit(sp(6, 9), in.Intern("32")),
		},
	}
	root := ast.NewExpr(sp(0, 11), &ast.ExprType{Ty: arr})

	tr := &trace{}
	ast.WalkExpr(roRecorder{trace: tr}, root)

	want := []string{
		"expr 0..11", // the type expression itself
		"ty 1..10",
		"ty 1..5",
	}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("array size leaked into traversal:\ngot:  %v\nwant: %v", tr.events, want)
	}
}

type renamer struct {
	ast.MutBase
	from, to source.Symbol
}

func (r renamer) MutateIdent(n *source.Ident) bool {
	if n.Name == r.from {
		n.Name = r.to
	}
	return true
}

func TestWalkMutRewritesInPlace(t *testing.T) {
	in := source.NewInterner()
	unit := buildUnit(in)

	from := in.Intern("x")
	to := in.Intern("renamed")
	ast.WalkMut(renamer{from: from, to: to}, unit)

	contract := unit.Items[2].Kind.(*ast.ItemContract)
	stateVar := contract.Body[0].Kind.(*ast.VariableDefinition)
	if stateVar.Name.Name != to {
		t.Errorf("state variable still named %d, want %d", stateVar.Name.Name, to)
	}
}

type spanShifter struct {
	ast.MutBase
	by uint32
}

func (s spanShifter) MutateSpan(n *source.Span) {
	if n.IsDummy() {
		return
	}
	*n = source.NewSpan(n.Lo.Add(s.by), n.Hi.Add(s.by))
}

func TestWalkMutSpanHook(t *testing.T) {
	in := source.NewInterner()
	e := ast.NumberLit(sp(10, 12), in.Intern("7"))

	ast.WalkExprMut(spanShifter{by: 5}, e)
	if e.Span != sp(15, 17) {
		t.Errorf("expression span = %v, want 15..17", e.Span)
	}
	lit := e.Kind.(*ast.ExprLit)
	if lit.Lit.Span != sp(15, 17) {
		t.Errorf("literal span = %v, want 15..17", lit.Lit.Span)
	}
}

func TestBaseVisitsEverythingByDefault(t *testing.T) {
	in := source.NewInterner()
	unit := buildUnit(in)

	// Bare defaults must be safe on a full tree.
	ast.Walk(ast.Base{}, unit)
	ast.WalkMut(ast.MutBase{}, unit)
}

func TestWalkItemMutRewritesWithinItem(t *testing.T) {
	in := source.NewInterner()
	unit := buildUnit(in)

	from := in.Intern("x")
	to := in.Intern("renamed")
	contractItem := unit.Items[2]
	ast.WalkItemMut(renamer{from: from, to: to}, contractItem)

	contract := contractItem.Kind.(*ast.ItemContract)
	stateVar := contract.Body[0].Kind.(*ast.VariableDefinition)
	if stateVar.Name.Name != to {
		t.Errorf("state variable still named %d, want %d", stateVar.Name.Name, to)
	}
}

func TestWalkStmtMutSpanHook(t *testing.T) {
	in := source.NewInterner()
	ret := ast.NewStmt(sp(10, 20), &ast.StmtReturn{
		Expr: ast.NumberLit(sp(17, 18), in.Intern("1")),
	})

	ast.WalkStmtMut(spanShifter{by: 5}, ret)
	if ret.Span != sp(15, 25) {
		t.Errorf("statement span = %v, want 15..25", ret.Span)
	}
	inner := ret.Kind.(*ast.StmtReturn).Expr
	if inner.Span != sp(22, 23) {
		t.Errorf("returned expression span = %v, want 22..23", inner.Span)
	}

	// The scoped read-only walk observes the rewritten spans.
	tr := &trace{}
	ast.WalkStmt(roRecorder{trace: tr}, ret)
	want := []string{"stmt 15..25", "expr 22..23", "lit 22..23"}
	if !reflect.DeepEqual(tr.events, want) {
		t.Errorf("scoped traversal:\ngot:  %v\nwant: %v", tr.events, want)
	}
}
