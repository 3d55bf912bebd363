package source

import (
	"slices"
)

// Interner deduplicates strings into Symbol handles. Interning is
// idempotent; resolved strings live as long as the interner. Confined
// to one session, one goroutine.
type Interner struct {
	byID  []string          // handle -> string (byID[0] = "" for NoSymbol)
	index map[string]Symbol // string -> handle
}

// NewInterner builds an interner pre-populated with the keyword block
// and the well-known symbols, so the Kw*/Sym* constants are valid
// handles from the start.
func NewInterner() *Interner {
	in := &Interner{
		byID:  make([]string, 0, len(preinterned)+64),
		index: make(map[string]Symbol, len(preinterned)+64),
	}
	for sym, s := range preinterned {
		in.byID = append(in.byID, s)
		in.index[s] = Symbol(sym)
	}
	return in
}

// Intern returns the existing handle for s, or allocates a new one.
// Interning never fails.
func (in *Interner) Intern(s string) Symbol {
	if id, ok := in.index[s]; ok {
		return id
	}
	// Own copy of the string so the handle never aliases a caller's
	// larger buffer.
	cpy := string([]byte(s))
	id := Symbol(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes interns the string form of b.
func (in *Interner) InternBytes(b []byte) Symbol {
	return in.Intern(string(b))
}

// Resolve returns the text for a handle, and false for handles this
// interner never issued.
func (in *Interner) Resolve(sym Symbol) (string, bool) {
	if !in.Has(sym) {
		return "", false
	}
	return in.byID[sym], true
}

// MustResolve returns the text for a handle, panicking on handles this
// interner never issued (a contract violation upstream).
func (in *Interner) MustResolve(sym Symbol) string {
	s, ok := in.Resolve(sym)
	if !ok {
		panic("invalid symbol handle")
	}
	return s
}

// Has reports whether the handle was issued by this interner.
func (in *Interner) Has(sym Symbol) bool {
	return int(sym) < len(in.byID)
}

// Len returns the number of interned strings, pre-populated ones
// included.
func (in *Interner) Len() int {
	return len(in.byID)
}

// Snapshot returns a copy of all interned strings in handle order.
func (in *Interner) Snapshot() []string {
	return slices.Clone(in.byID)
}
