package driver

import (
	"fmt"
	"testing"

	"helios/internal/diag"
	"helios/internal/session"
	"helios/internal/source"
)

func bagCodes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestReportLoadFailureExhaustionIsFatal(t *testing.T) {
	_, s, err := session.WithSession(10, func(s *session.Session) struct{} {
		reportLoadFailure(s, fmt.Errorf("cannot load %q: %w", "big.sol", source.ErrPosSpaceExhausted))
		return struct{}{}
	})
	if err == nil {
		t.Fatal("position space exhaustion must abort the session")
	}

	found := false
	for _, d := range s.Diags.Items() {
		if d.Code == diag.IOSpaceExhaust {
			found = true
		}
	}
	if !found {
		t.Errorf("bag codes = %v, want IOSpaceExhaust", bagCodes(s.Diags))
	}
}

func TestReportLoadFailureRecoverableCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want diag.Code
	}{
		{name: "encoding", err: fmt.Errorf("a.sol: %w", source.ErrBadEncoding), want: diag.IOBadEncoding},
		{name: "other", err: fmt.Errorf("a.sol: permission denied"), want: diag.IOUnreadable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s, err := session.WithSession(10, func(s *session.Session) struct{} {
				reportLoadFailure(s, tt.err)
				return struct{}{}
			})
			if err != nil {
				t.Fatalf("recoverable load failure aborted the session: %v", err)
			}
			if got := bagCodes(s.Diags); len(got) != 1 || got[0] != tt.want {
				t.Errorf("bag codes = %v, want [%v]", got, tt.want)
			}
		})
	}
}
