// File: session_test.go
// Title: View Session Command Unit Tests
// Description: Tests the zoom/pan/reset transitions, the inverse-zoom
//              pan step and the unknown-command error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial test suite

package session

import (
	"math"
	"testing"

	"github.com/msto63/mGW/internal/plot"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		start    plot.Settings
		cmd      Command
		expected plot.Settings
	}{
		{
			name:     "Zoom in multiplies by step",
			start:    plot.Settings{Zoom: 1},
			cmd:      ZoomIn,
			expected: plot.Settings{Zoom: 1.5},
		},
		{
			name:     "Zoom out divides by step",
			start:    plot.Settings{Zoom: 3},
			cmd:      ZoomOut,
			expected: plot.Settings{Zoom: 2},
		},
		{
			name:     "Move left shifts x by inverse zoom",
			start:    plot.Settings{Zoom: 2},
			cmd:      MoveLeft,
			expected: plot.Settings{Zoom: 2, XOffset: -0.5},
		},
		{
			name:     "Move right shifts x by inverse zoom",
			start:    plot.Settings{Zoom: 4, XOffset: 1},
			cmd:      MoveRight,
			expected: plot.Settings{Zoom: 4, XOffset: 1.25},
		},
		{
			name:     "Move up raises y offset",
			start:    plot.Settings{Zoom: 1},
			cmd:      MoveUp,
			expected: plot.Settings{Zoom: 1, YOffset: 1},
		},
		{
			name:     "Move down lowers y offset",
			start:    plot.Settings{Zoom: 1, YOffset: 2},
			cmd:      MoveDown,
			expected: plot.Settings{Zoom: 1, YOffset: 1},
		},
		{
			name:     "Reset restores defaults",
			start:    plot.Settings{Zoom: 9, XOffset: 3, YOffset: -4},
			cmd:      Reset,
			expected: plot.DefaultSettings(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.start, tt.cmd)
			if err != nil {
				t.Fatalf("Apply returned error: %v", err)
			}

			if math.Abs(got.Zoom-tt.expected.Zoom) > 1e-12 ||
				math.Abs(got.XOffset-tt.expected.XOffset) > 1e-12 ||
				math.Abs(got.YOffset-tt.expected.YOffset) > 1e-12 {
				t.Errorf("Apply(%+v, %s) = %+v, expected %+v",
					tt.start, tt.cmd, got, tt.expected)
			}
		})
	}
}

func TestApply_UnknownCommand(t *testing.T) {
	start := plot.Settings{Zoom: 2, XOffset: 1}

	got, err := Apply(start, Command(42))

	if err == nil {
		t.Fatal("expected error for unknown command")
	}
	if got != start {
		t.Errorf("settings changed on unknown command: %+v", got)
	}
}

func TestCommand_String(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{ZoomIn, "zoom-in"},
		{ZoomOut, "zoom-out"},
		{MoveLeft, "move-left"},
		{MoveRight, "move-right"},
		{MoveUp, "move-up"},
		{MoveDown, "move-down"},
		{Reset, "reset"},
		{Command(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.expected {
			t.Errorf("Command(%d).String() = %q, expected %q", int(tt.cmd), got, tt.expected)
		}
	}
}
