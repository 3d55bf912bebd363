package diag

import (
	"fmt"
)

// FatalError aborts the remainder of the current compilation unit. It
// is raised with Fatal and caught exactly once, at the session entry
// boundary, never in between. Use it only when continuing is
// meaningless: unreadable input, position space exhaustion, internal
// invariant violations.
type FatalError struct {
	Code Code
	Msg  string
}

func (e FatalError) Error() string {
	return e.Msg
}

// Fatal aborts the current compilation via a non-local exit. It never
// returns.
func Fatal(msg string) {
	FatalCode(InternalError, msg)
}

// FatalCode is Fatal with an explicit diagnostic code.
func FatalCode(code Code, msg string) {
	panic(FatalError{Code: code, Msg: msg})
}

// Fatalf is Fatal with formatting.
func Fatalf(format string, args ...any) {
	Fatal(fmt.Sprintf(format, args...))
}

// CatchFatal runs f and intercepts a fatal abort, returning it as a
// value. Any other panic propagates untouched. Callers other than the
// session entry point must not use this: a fatal is caught once.
func CatchFatal(f func()) (fatal *FatalError) {
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(FatalError)
			if !ok {
				panic(r)
			}
			fatal = &fe
		}
	}()
	f()
	return nil
}
