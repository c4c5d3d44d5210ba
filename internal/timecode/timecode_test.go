package timecode

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		want   time.Duration
		wantOK bool
	}{
		{"12:34", 12*time.Minute + 34*time.Second, true},
		{"01:02:03", time.Hour + 2*time.Minute + 3*time.Second, true},
		{"0:05", 5 * time.Second, true},
		{"[03:10]", 3*time.Minute + 10*time.Second, true},
		{"12:34.5", 12*time.Minute + 34*time.Second, true},
		{"1h 2m", time.Hour + 2*time.Minute, true},
		{"2m30s", 2*time.Minute + 30*time.Second, true},
		{"90s", 90 * time.Second, true},
		{"45", 45 * time.Second, true},
		{"  1H 15M  ", time.Hour + 15*time.Minute, true},
		{"12:75", 0, false},
		{"1:2:3:4", 0, false},
		{"around the middle", 0, false},
		{"", 0, false},
		{"-5s", 0, false},
		{"9999999999999:00", 0, false},
		{"99999999999999999999", 0, false},
		{"2562047:47:16", 2562047*time.Hour + 47*time.Minute + 16*time.Second, true},
		{"2562047:47:17", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Parse(%q) = %v, %v, want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"00:42", "0:42"},
		{"1h 2m 3s", "1:02:03"},
		{"75s", "1:15"},
		{" intro ", "intro"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Label(tt.input); got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
