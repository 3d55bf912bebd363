// Package session owns the scoped state of one compilation: the string
// interner, the source map and the accumulated diagnostics. Symbols and
// spans are only meaningful relative to the session that produced them.
//
// A session is confined to one goroutine. Enter creates the session on
// first entry and tears it down on exit; nested entries reuse the
// existing session instead of stacking a new one. Enter is also the
// single catch boundary for diag.Fatal aborts.
package session

import (
	"helios/internal/diag"
	"helios/internal/source"
)

// DefaultMaxDiagnostics bounds the bag of a fresh session.
const DefaultMaxDiagnostics = 100

// Session bundles the state every front-end component needs: exactly
// one live interner, one live source map and the diagnostic bag.
type Session struct {
	Sources  *source.SourceMap
	Interner *source.Interner
	Diags    *diag.Bag
}

func newSession(maxDiags int) *Session {
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}
	return &Session{
		Sources:  source.NewSourceMap(),
		Interner: source.NewInterner(),
		Diags:    diag.NewBag(maxDiags),
	}
}

// Intern deduplicates s through the session interner.
func (s *Session) Intern(str string) source.Symbol {
	return s.Interner.Intern(str)
}

// Resolve returns the text behind a symbol issued by this session.
func (s *Session) Resolve(sym source.Symbol) string {
	return s.Interner.MustResolve(sym)
}

// Reporter returns the reporting sink feeding the session bag.
func (s *Session) Reporter() diag.Reporter {
	return diag.BagReporter{Bag: s.Diags}
}

// SpanText extracts the source text behind a span.
func (s *Session) SpanText(span source.Span) (string, bool) {
	return s.Sources.SpanToText(span)
}

// active is the goroutine-confined current session. The front-end core
// has no internal parallelism; concurrent compilations must run in
// separate goroutines with their own sessions (see internal/driver).
var active *Session

// Current returns the active session, panicking when none is entered —
// using symbols or spans without a session is a programming error, not
// a user-facing condition.
func Current() *Session {
	if active == nil {
		panic("no active session; wrap the compilation in session.Enter")
	}
	return active
}

// Active reports whether a session is currently entered.
func Active() bool {
	return active != nil
}

// Enter runs fn inside the active session, creating one if needed. A
// diag.Fatal raised anywhere below fn is caught here, recorded in the
// session bag and returned as diag.ErrorGuaranteed; it never escapes
// this boundary. Other panics propagate.
//
// Ordinary (recoverable) error diagnostics do not make Enter fail; the
// caller inspects the bag to decide what they mean.
func Enter[T any](fn func(*Session) T) (T, error) {
	s, created := enter()
	if created {
		defer exit()
	}

	var result T
	fatal := diag.CatchFatal(func() {
		result = fn(s)
	})
	if fatal != nil {
		guar, _ := s.Diags.Emit(diag.NewError(fatal.Code, source.DummySpan, fatal.Msg))
		var zero T
		return zero, guar
	}
	return result, nil
}

// EnterWithExitCode is Enter for driver code that only needs a process
// exit status: 0 on success, 1 when fn failed or a fatal was caught.
func EnterWithExitCode(fn func(*Session) error) int {
	err, enterErr := Enter(fn)
	if enterErr != nil || err != nil {
		return 1
	}
	return 0
}

func enter() (s *Session, created bool) {
	if active != nil {
		return active, false
	}
	active = newSession(DefaultMaxDiagnostics)
	return active, true
}

func exit() {
	active = nil
}

// WithSession runs fn against an explicit, freshly created session that
// is not installed as the goroutine-wide current one. Tests and
// parallel drivers use it to keep sessions independent.
func WithSession[T any](maxDiags int, fn func(*Session) T) (T, *Session, error) {
	s := newSession(maxDiags)
	var result T
	fatal := diag.CatchFatal(func() {
		result = fn(s)
	})
	if fatal != nil {
		guar, _ := s.Diags.Emit(diag.NewError(fatal.Code, source.DummySpan, fatal.Msg))
		var zero T
		return zero, s, guar
	}
	return result, s, nil
}
