package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input  string
		want   Command
		wantOK bool
	}{
		{"/help", Command{Name: "/help"}, true},
		{"  /EXPORT  out/report.yaml ", Command{Name: "/export", Args: "out/report.yaml"}, true},
		{"/model gemini-2.5-pro", Command{Name: "/model", Args: "gemini-2.5-pro"}, true},
		{"./session.mp4", Command{}, false},
		{"https://example.com/v.mp4", Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCommand(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandNames(t *testing.T) {
	names := CommandNames()
	assert.Len(t, names, len(AvailableCommands))
	assert.Contains(t, names, "/new")
	assert.Contains(t, names, "/export")
}
