package ui

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestNewTheme(t *testing.T) {
	assert.IsType(t, PtermTheme{}, NewTheme(true))
	assert.IsType(t, PlainTheme{}, NewTheme(false))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "found ip(192.168.1.1)", Header(PlainTheme{}, "ip", "192.168.1.1"))
}

func TestPassLine(t *testing.T) {
	tests := []struct {
		name     string
		status   Status
		expected string
	}{
		{"running", StatusRunning, "➔ check_private"},
		{"skipped", StatusSkipped, "✘ check_private ignored"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PassLine(PlainTheme{}, tt.status, "check_private"))
		})
	}
}

func TestPtermTheme_SameTextWithoutColor(t *testing.T) {
	colored := PassLine(PtermTheme{}, StatusSkipped, "str_hashes")
	assert.Equal(t, "✘ str_hashes ignored", pterm.RemoveColorFromString(colored))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "unknown", Status(42).String())
	assert.Equal(t, "?", Status(42).Symbol())
}
