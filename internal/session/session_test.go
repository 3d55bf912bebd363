package session_test

import (
	"errors"
	"testing"

	"helios/internal/diag"
	"helios/internal/session"
	"helios/internal/source"
)

func TestEnterCreatesAndTearsDown(t *testing.T) {
	if session.Active() {
		t.Fatal("no session should be active before Enter")
	}

	_, err := session.Enter(func(s *session.Session) struct{} {
		if !session.Active() {
			t.Error("session should be active inside Enter")
		}
		if session.Current() != s {
			t.Error("Current should return the entered session")
		}
		return struct{}{}
	})
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}

	if session.Active() {
		t.Error("session should be torn down after Enter returns")
	}
}

func TestEnterNestedReuses(t *testing.T) {
	_, err := session.Enter(func(outer *session.Session) struct{} {
		_, innerErr := session.Enter(func(inner *session.Session) struct{} {
			if inner != outer {
				t.Error("nested Enter must reuse the active session")
			}
			return struct{}{}
		})
		if innerErr != nil {
			t.Errorf("nested Enter: %v", innerErr)
		}
		if !session.Active() {
			t.Error("inner exit must not tear down the outer session")
		}
		return struct{}{}
	})
	if err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if session.Active() {
		t.Error("outer exit should tear down the session")
	}
}

func TestCurrentWithoutSessionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Current outside a session should panic")
		}
	}()
	session.Current()
}

func TestEnterCatchesFatal(t *testing.T) {
	_, err := session.Enter(func(s *session.Session) struct{} {
		diag.FatalCode(diag.IOSpaceExhaust, "source map position space exhausted")
		return struct{}{}
	})
	if err == nil {
		t.Fatal("a fatal abort must surface as an error from Enter")
	}
	var guar diag.ErrorGuaranteed
	if !errors.As(err, &guar) {
		t.Errorf("error should be an ErrorGuaranteed proof, got %T", err)
	}
	if session.Active() {
		t.Error("session must be torn down after a fatal abort")
	}
}

func TestEnterFatalRecordsDiagnostic(t *testing.T) {
	_, s, err := session.WithSession(0, func(s *session.Session) struct{} {
		diag.Fatal("boom")
		return struct{}{}
	})
	if err == nil {
		t.Fatal("fatal must surface as error")
	}
	if !s.Diags.HasErrors() {
		t.Fatal("fatal must be recorded in the bag")
	}
	d := s.Diags.Items()[0]
	if d.Code != diag.InternalError || d.Message != "boom" {
		t.Errorf("recorded %v %q, want InternalError \"boom\"", d.Code, d.Message)
	}
	if !d.Primary.IsDummy() {
		t.Errorf("fatal diagnostic should carry a dummy span, got %v", d.Primary)
	}
}

func TestEnterPropagatesForeignPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("non-fatal panics must propagate")
		}
		// The session must not leak even then.
		if session.Active() {
			t.Error("session leaked after foreign panic")
		}
	}()
	_, _ = session.Enter(func(s *session.Session) struct{} {
		panic("unexpected")
	})
}

func TestEnterWithExitCode(t *testing.T) {
	if code := session.EnterWithExitCode(func(s *session.Session) error { return nil }); code != 0 {
		t.Errorf("clean run exit = %d, want 0", code)
	}
	if code := session.EnterWithExitCode(func(s *session.Session) error {
		return errors.New("failed")
	}); code != 1 {
		t.Errorf("failed run exit = %d, want 1", code)
	}
	if code := session.EnterWithExitCode(func(s *session.Session) error {
		diag.Fatal("aborted")
		return nil
	}); code != 1 {
		t.Errorf("fatal run exit = %d, want 1", code)
	}
}

func TestWithSessionIndependent(t *testing.T) {
	_, a, err := session.WithSession(0, func(s *session.Session) struct{} {
		s.Intern("alpha")
		return struct{}{}
	})
	if err != nil {
		t.Fatal(err)
	}
	_, b, err := session.WithSession(0, func(s *session.Session) struct{} {
		if session.Active() {
			t.Error("WithSession must not install a goroutine-wide session")
		}
		return struct{}{}
	})
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("WithSession must create fresh sessions")
	}
}

func TestSessionHelpers(t *testing.T) {
	_, s, err := session.WithSession(0, func(s *session.Session) struct{} {
		sym := s.Intern("supply")
		if s.Resolve(sym) != "supply" {
			t.Errorf("Resolve mismatch for %d", sym)
		}
		f, addErr := s.Sources.AddVirtualFile("a.sol", "uint x;")
		if addErr != nil {
			t.Fatal(addErr)
		}
		text, ok := s.SpanText(source.NewSpan(f.Base, f.Base.Add(4)))
		if !ok || text != "uint" {
			t.Errorf("SpanText = %q, %v", text, ok)
		}
		return struct{}{}
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Diags.HasErrors() {
		t.Error("helper usage must not emit diagnostics")
	}
}
