// File: session.go
// Title: View Session Commands
// Description: Explicit state transitions for the interactive view:
//              zooming, panning and resetting the plot settings. The
//              settings value is passed in and a new value returned, so
//              no view state is shared or mutated in place.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial session command implementation

package session

import (
	"fmt"

	"github.com/msto63/mGW/internal/plot"
)

// ZoomStep is the multiplicative zoom factor per command
const ZoomStep = 1.5

// Command is one user action on the view
type Command int

const (
	ZoomIn Command = iota
	ZoomOut
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
	Reset
)

// String returns a string representation of the command
func (c Command) String() string {
	switch c {
	case ZoomIn:
		return "zoom-in"
	case ZoomOut:
		return "zoom-out"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Apply returns the settings after executing cmd. Pan steps scale with
// the inverse zoom so one step always moves the view by one grid unit.
// Unknown commands leave the settings untouched and return an error.
func Apply(s plot.Settings, cmd Command) (plot.Settings, error) {
	switch cmd {
	case ZoomIn:
		s.Zoom *= ZoomStep
	case ZoomOut:
		s.Zoom /= ZoomStep
	case MoveLeft:
		s.XOffset -= 1.0 / s.Zoom
	case MoveRight:
		s.XOffset += 1.0 / s.Zoom
	case MoveUp:
		s.YOffset += 1.0 / s.Zoom
	case MoveDown:
		s.YOffset -= 1.0 / s.Zoom
	case Reset:
		s = plot.DefaultSettings()
	default:
		return s, fmt.Errorf("unknown session command %d", int(cmd))
	}
	return s, nil
}
