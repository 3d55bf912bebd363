package main

import "testing"

func TestParseProgressMode(t *testing.T) {
	tests := []struct {
		in      string
		want    progressMode
		wantErr bool
	}{
		{in: "", want: progressAuto},
		{in: "auto", want: progressAuto},
		{in: " On ", want: progressAlways},
		{in: "off", want: progressNever},
		{in: "tui", wantErr: true},
	}
	for _, tt := range tests {
		got, err := parseProgressMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseProgressMode(%q) accepted an invalid mode", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseProgressMode(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseProgressMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWantProgressUIExplicitModes(t *testing.T) {
	// Only auto consults the terminal; explicit modes are absolute.
	if !wantProgressUI(progressAlways) {
		t.Error("on must force the progress view")
	}
	if wantProgressUI(progressNever) {
		t.Error("off must suppress the progress view")
	}
}
