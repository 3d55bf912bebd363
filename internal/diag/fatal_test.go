package diag_test

import (
	"testing"

	"helios/internal/diag"
)

func TestCatchFatal(t *testing.T) {
	fatal := diag.CatchFatal(func() {
		diag.Fatal("unrecoverable")
	})
	if fatal == nil {
		t.Fatal("CatchFatal should intercept a Fatal abort")
	}
	if fatal.Msg != "unrecoverable" {
		t.Errorf("Msg = %q, want %q", fatal.Msg, "unrecoverable")
	}
	if fatal.Code != diag.InternalError {
		t.Errorf("Code = %v, want InternalError", fatal.Code)
	}
}

func TestCatchFatalWithCode(t *testing.T) {
	fatal := diag.CatchFatal(func() {
		diag.FatalCode(diag.IOSpaceExhaust, "out of positions")
	})
	if fatal == nil || fatal.Code != diag.IOSpaceExhaust {
		t.Fatalf("got %+v, want IOSpaceExhaust fatal", fatal)
	}
}

func TestCatchFatalNoPanic(t *testing.T) {
	if fatal := diag.CatchFatal(func() {}); fatal != nil {
		t.Errorf("no abort should yield nil, got %+v", fatal)
	}
}

func TestCatchFatalRepanicsForeignPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("foreign panic must propagate through CatchFatal")
		}
		if r != "not a fatal" {
			t.Errorf("recovered %v, want original panic value", r)
		}
	}()
	diag.CatchFatal(func() {
		panic("not a fatal")
	})
}

func TestErrorGuaranteedIsError(t *testing.T) {
	bag := diag.NewBag(10)
	guar, ok := bag.Emit(diag.NewError(diag.IOUnreadable, sp(1, 2), "x"))
	if !ok {
		t.Fatal("expected a proof token")
	}
	var err error = guar
	if err.Error() == "" {
		t.Error("proof token should read as a meaningful error")
	}
}
