package utils

import "testing"

func TestParseMacro(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "12", want: 12},
		{raw: "12g", want: 12},
		{raw: "12 g", want: 12},
		{raw: " 12.4g ", want: 12},
		{raw: "12.6G", want: 13},
		{raw: "0", want: 0},
		{raw: "", wantErr: true},
		{raw: "g", wantErr: true},
		{raw: "abc", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseMacro(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMacro(%q) expected error, got %d", tt.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMacro(%q) unexpected error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMacro(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}
