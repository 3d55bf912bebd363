package diag_test

import (
	"testing"

	"helios/internal/diag"
	"helios/internal/source"
)

func sp(lo, hi uint32) source.Span {
	return source.NewSpan(source.BytePos(lo), source.BytePos(hi))
}

func TestBagEmitProofToken(t *testing.T) {
	bag := diag.NewBag(10)

	if _, ok := bag.Emit(diag.NewWarning(diag.SrcNoPragma, sp(1, 4), "missing pragma")); ok {
		t.Error("warnings must not yield a proof token")
	}
	if _, ok := bag.Emit(diag.New(diag.SevNote, diag.SrcHadBOM, sp(1, 1), "had BOM")); ok {
		t.Error("notes must not yield a proof token")
	}
	if bag.HasErrors() {
		t.Fatal("bag must not report errors before an error emission")
	}
	if _, ok := bag.ErrorGuaranteed(); ok {
		t.Fatal("no proof token without errors")
	}

	if _, ok := bag.Emit(diag.NewError(diag.IOUnreadable, sp(2, 6), "cannot read")); !ok {
		t.Error("error emission must yield a proof token")
	}
	if !bag.HasErrors() {
		t.Error("bag must report errors after an error emission")
	}
	if _, ok := bag.ErrorGuaranteed(); !ok {
		t.Error("proof token must be available after an error emission")
	}
}

func TestBagDedup(t *testing.T) {
	bag := diag.NewBag(10)
	d := diag.NewError(diag.IOUnreadable, sp(5, 9), "boom")

	bag.Emit(d)
	bag.Emit(d)
	bag.Emit(d)

	if bag.Len() != 1 {
		t.Errorf("identical diagnostics recorded %d times, want 1", bag.Len())
	}
	// Duplicates still count as errors so the proof stays sound.
	if bag.ErrorCount() != 3 {
		t.Errorf("ErrorCount = %d, want 3", bag.ErrorCount())
	}
	if bag.Dropped() != 2 {
		t.Errorf("Dropped = %d, want 2", bag.Dropped())
	}

	// Any differing field makes it a distinct finding.
	bag.Emit(diag.NewError(diag.IOUnreadable, sp(5, 9), "other message"))
	bag.Emit(diag.NewError(diag.IOUnreadable, sp(6, 9), "boom"))
	bag.Emit(diag.NewWarning(diag.IOUnreadable, sp(5, 9), "boom"))
	if bag.Len() != 4 {
		t.Errorf("distinct diagnostics recorded %d times, want 4", bag.Len())
	}
}

func TestBagTruncation(t *testing.T) {
	bag := diag.NewBag(2)
	for i := uint32(0); i < 5; i++ {
		bag.Emit(diag.NewError(diag.IOUnreadable, sp(i, i+1), "e"))
	}
	if bag.Len() != 2 {
		t.Errorf("recorded %d diagnostics, want cap 2", bag.Len())
	}
	if bag.ErrorCount() != 5 {
		t.Errorf("ErrorCount = %d, want 5 despite truncation", bag.ErrorCount())
	}
	if bag.Dropped() != 3 {
		t.Errorf("Dropped = %d, want 3", bag.Dropped())
	}
}

func TestBagLargeLimit(t *testing.T) {
	// Limits above 65535 must hold; the configured value is a plain int.
	bag := diag.NewBag(70000)
	if bag.Cap() != 70000 {
		t.Fatalf("Cap = %d, want 70000", bag.Cap())
	}
	for i := uint32(0); i < 5000; i++ {
		bag.Emit(diag.NewWarning(diag.SrcLongLine, sp(i, i+1), "w"))
	}
	if bag.Len() != 5000 {
		t.Errorf("recorded %d of 5000 distinct diagnostics", bag.Len())
	}
	if bag.Dropped() != 0 {
		t.Errorf("Dropped = %d, want 0 under the limit", bag.Dropped())
	}
}

func TestBagMerge(t *testing.T) {
	a := diag.NewBag(10)
	a.Emit(diag.NewError(diag.IOUnreadable, sp(1, 2), "a"))

	b := diag.NewBag(1)
	b.Emit(diag.NewError(diag.IOUnreadable, sp(3, 4), "b1"))
	b.Emit(diag.NewError(diag.IOUnreadable, sp(5, 6), "b2")) // dropped by cap

	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("merged Len = %d, want 2", a.Len())
	}
	// The error dropped by b's cap still counts after the merge.
	if a.ErrorCount() != 3 {
		t.Errorf("merged ErrorCount = %d, want 3", a.ErrorCount())
	}
}

func TestBagSort(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Emit(diag.NewWarning(diag.SrcLongLine, sp(9, 12), "w"))
	bag.Emit(diag.NewError(diag.IOUnreadable, sp(3, 5), "e"))
	bag.Emit(diag.NewWarning(diag.SrcNoPragma, sp(3, 5), "same span, lower severity"))
	bag.Emit(diag.New(diag.SevNote, diag.SrcHadBOM, sp(1, 1), "n"))

	bag.Sort()
	items := bag.Items()

	wantLo := []uint32{1, 3, 3, 9}
	for i, d := range items {
		if uint32(d.Primary.Lo) != wantLo[i] {
			t.Fatalf("item %d at pos %d, want %d", i, d.Primary.Lo, wantLo[i])
		}
	}
	// Same span: error sorts before warning.
	if items[1].Severity != diag.SevError || items[2].Severity != diag.SevWarning {
		t.Errorf("severity tiebreak wrong: %v then %v", items[1].Severity, items[2].Severity)
	}
}

func TestBagFilterMin(t *testing.T) {
	bag := diag.NewBag(10)
	bag.Emit(diag.New(diag.SevNote, diag.SrcHadBOM, sp(1, 1), "n"))
	bag.Emit(diag.NewWarning(diag.SrcNoPragma, sp(2, 3), "w"))
	bag.Emit(diag.NewError(diag.IOUnreadable, sp(4, 5), "e"))

	errsOnly := bag.FilterMin(diag.SevError)
	if errsOnly.Len() != 1 {
		t.Errorf("FilterMin(SevError) kept %d, want 1", errsOnly.Len())
	}
	if !errsOnly.HasErrors() {
		t.Error("filtered bag lost its error accounting")
	}

	noNotes := bag.FilterMin(diag.SevWarning)
	if noNotes.Len() != 2 {
		t.Errorf("FilterMin(SevWarning) kept %d, want 2", noNotes.Len())
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		name string
		code diag.Code
		want string
	}{
		{name: "io", code: diag.IOUnreadable, want: "E0101"},
		{name: "src", code: diag.SrcEmptyFile, want: "E0201"},
		{name: "internal", code: diag.InternalError, want: "E9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
