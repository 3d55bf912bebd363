package diag_test

import (
	"testing"

	"helios/internal/diag"
	"helios/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	sm := source.NewSourceMap()
	f, err := sm.AddVirtualFile("a.sol", "contract A {\n  uint x\n}\n")
	if err != nil {
		t.Fatal(err)
	}

	at := func(lo, hi uint32) source.Span {
		return source.NewSpan(f.Base.Add(lo), f.Base.Add(hi))
	}
	diags := []diag.Diagnostic{
		diag.NewWarning(diag.SrcNoPragma, at(0, 8), "missing version pragma").
			WithNote(at(0, 8), "add pragma solidity"),
		diag.NewError(diag.SrcEmptyFile, source.DummySpan, "no content"),
		diag.New(diag.SevNote, diag.SrcCRLF, at(15, 19), "line endings normalized"),
	}

	got := diag.FormatGoldenDiagnostics(diags, sm, true)
	want := "<unknown>:0:0: ERROR E0201: no content\n" +
		"a.sol:1:1: NOTE E0204: add pragma solidity\n" +
		"a.sol:1:1: WARNING E0204: missing version pragma\n" +
		"a.sol:2:3: NOTE E0203: line endings normalized\n"
	if got != want {
		t.Errorf("golden mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatGoldenDiagnosticsEmpty(t *testing.T) {
	sm := source.NewSourceMap()
	if out := diag.FormatGoldenDiagnostics(nil, sm, false); out != "" {
		t.Errorf("empty input produced output %q", out)
	}
	if out := diag.FormatGoldenDiagnostics([]diag.Diagnostic{{}}, nil, false); out != "" {
		t.Errorf("nil source map produced output %q", out)
	}
}
