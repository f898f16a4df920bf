package web

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in       string
		expected core.Action
		ok       bool
	}{
		{"north", core.ActionUp, true},
		{"UP", core.ActionUp, true},
		{"south", core.ActionDown, true},
		{" west ", core.ActionLeft, true},
		{"right", core.ActionRight, true},
		{"pause", core.ActionPause, true},
		{"restart", core.ActionRestart, true},
		{"jump", core.ActionNone, false},
		{"", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := parseAction(tc.in)
			if got != tc.expected || ok != tc.ok {
				t.Errorf("parseAction(%q) = %v, %v; expected %v, %v", tc.in, got, ok, tc.expected, tc.ok)
			}
		})
	}
}
