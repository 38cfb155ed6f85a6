// Package constants defines shared constants, types, and configuration values
// used throughout the minimenu engine and its backends.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the engine and its backends.
const (
	EnvironmentEnvVar  = "ENVIRONMENT"
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	DebugEnvVar        = "MINIMENU_DEBUG"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv(EnvironmentEnvVar) == Development
}

// VirtualButton represents an abstract input button, mapped from physical hardware.
// Keyboards, evdev devices and scripted input all resolve to these before decoding.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonL1
	VirtualButtonR1
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

func (vb VirtualButton) String() string {
	switch vb {
	case VirtualButtonUnassigned:
		return "Unassigned"
	case VirtualButtonUp:
		return "Up"
	case VirtualButtonDown:
		return "Down"
	case VirtualButtonLeft:
		return "Left"
	case VirtualButtonRight:
		return "Right"
	case VirtualButtonA:
		return "A"
	case VirtualButtonB:
		return "B"
	case VirtualButtonL1:
		return "L1"
	case VirtualButtonR1:
		return "R1"
	case VirtualButtonStart:
		return "Start"
	case VirtualButtonSelect:
		return "Select"
	case VirtualButtonMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// TextAlign specifies horizontal text alignment.
type TextAlign int

const (
	TextAlignLeft   TextAlign = iota // Align text to the left edge
	TextAlignCenter                  // Center text horizontally
	TextAlignRight                   // Align text to the right edge
)

// ParseTextAlign maps a config name to a TextAlign. Unknown names align left.
func ParseTextAlign(name string) TextAlign {
	switch name {
	case "center":
		return TextAlignCenter
	case "right":
		return TextAlignRight
	default:
		return TextAlignLeft
	}
}

func (a TextAlign) String() string {
	switch a {
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return "left"
	}
}

// Default tick counts and spacing.
const (
	DefaultScrollFrames    = 5  // Ticks for the list to scroll one row
	DefaultIndicatorFrames = 5  // Ticks for the indicator to move one row
	DefaultPageSize        = 5  // Rows moved by PageUp / PageDown
	DefaultTitleSpacing    = 2  // Pixels between the title text and the separator line
	DefaultScrollbarWidth  = 3  // Width of the scrollbar in pixels
	DefaultFrameMillis     = 16 // Target frame time for backends without vsync
	DefaultRepeatDelay     = 18 // Ticks a direction is held before it repeats
	DefaultRepeatInterval  = 3  // Ticks between repeats after that
)
