package source_test

import (
	"testing"

	"helios/internal/source"
)

func TestInternIdempotent(t *testing.T) {
	in := source.NewInterner()
	first := in.Intern("balanceOf")
	second := in.Intern("balanceOf")
	if first != second {
		t.Fatalf("same string interned to %d and %d", first, second)
	}
	other := in.Intern("transfer")
	if other == first {
		t.Fatalf("distinct strings share symbol %d", first)
	}
	if got, ok := in.Resolve(first); !ok || got != "balanceOf" {
		t.Errorf("Resolve(%d) = %q, %v; want %q", first, got, ok, "balanceOf")
	}
}

func TestInternBytesMatchesIntern(t *testing.T) {
	in := source.NewInterner()
	a := in.Intern("owner")
	b := in.InternBytes([]byte("owner"))
	if a != b {
		t.Errorf("Intern and InternBytes disagree: %d vs %d", a, b)
	}
}

func TestInternDoesNotAliasCallerBuffer(t *testing.T) {
	in := source.NewInterner()
	buf := []byte("mutable")
	sym := in.InternBytes(buf)
	buf[0] = 'X'
	if got := in.MustResolve(sym); got != "mutable" {
		t.Errorf("interned string changed with caller buffer: %q", got)
	}
}

func TestPreinternedKeywords(t *testing.T) {
	in := source.NewInterner()
	tests := []struct {
		name string
		text string
		sym  source.Symbol
	}{
		{name: "contract", text: "contract", sym: source.KwContract},
		{name: "function", text: "function", sym: source.KwFunction},
		{name: "mapping", text: "mapping", sym: source.KwMapping},
		{name: "abstract", text: "abstract", sym: source.KwAbstract},
		{name: "while", text: "while", sym: source.KwWhile},
		{name: "underscore", text: "_", sym: source.SymUnderscore},
		{name: "solidity", text: "solidity", sym: source.SymSolidity},
		{name: "leave", text: "leave", sym: source.SymLeave},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Interning a pre-populated string must return the fixed
			// symbol, on a fresh interner, without growing it.
			before := in.Len()
			if got := in.Intern(tt.text); got != tt.sym {
				t.Errorf("Intern(%q) = %d, want %d", tt.text, got, tt.sym)
			}
			if in.Len() != before {
				t.Errorf("interning %q grew the table", tt.text)
			}
			if got := in.MustResolve(tt.sym); got != tt.text {
				t.Errorf("Resolve(%d) = %q, want %q", tt.sym, got, tt.text)
			}
		})
	}
}

func TestIsKeyword(t *testing.T) {
	if !source.KwContract.IsKeyword() {
		t.Error("KwContract should be a keyword")
	}
	if !source.KwAbstract.IsKeyword() || !source.KwWhile.IsKeyword() {
		t.Error("keyword range endpoints should be keywords")
	}
	if source.SymUnderscore.IsKeyword() {
		t.Error("`_` is reserved but not a keyword")
	}
	if source.NoSymbol.IsKeyword() {
		t.Error("NoSymbol must not be a keyword")
	}

	in := source.NewInterner()
	user := in.Intern("totalSupply")
	if user.IsKeyword() {
		t.Error("user symbol must not be a keyword")
	}
}

func TestResolveUnknownSymbol(t *testing.T) {
	in := source.NewInterner()
	if got, ok := in.Resolve(source.Symbol(1 << 20)); ok || got != "" {
		t.Errorf("Resolve(unknown) = %q, %v; want empty, false", got, ok)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("MustResolve on unknown symbol should panic")
		}
	}()
	in.MustResolve(source.Symbol(1 << 20))
}

func TestInternerSnapshot(t *testing.T) {
	in := source.NewInterner()
	sym := in.Intern("withdraw")

	snap := in.Snapshot()
	if len(snap) != in.Len() {
		t.Fatalf("snapshot holds %d strings, interner %d", len(snap), in.Len())
	}
	// Handle order: the symbol indexes its own text.
	if snap[sym] != "withdraw" {
		t.Errorf("snap[%d] = %q, want %q", sym, snap[sym], "withdraw")
	}
	if snap[source.KwContract] != "contract" {
		t.Errorf("snap[KwContract] = %q, want %q", snap[source.KwContract], "contract")
	}

	// The snapshot is a copy; mutating it leaves the interner intact.
	snap[sym] = "mangled"
	if got := in.MustResolve(sym); got != "withdraw" {
		t.Errorf("interner changed through snapshot: %q", got)
	}
}
