// Package detector selects how the CLI presents its output.
package detector

import (
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/pin/internal/ui/output"
	"golang.org/x/term"
)

// OutputMode represents the presentation mode of the CLI.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeColor renders styled, colored reports.
	ModeColor
	// ModePlain renders reports without color, for CI logs and pipes.
	ModePlain
	// ModeJSON renders plain reports and writes log records as JSON.
	ModeJSON
)

// DetectEnvironment returns the recommended output mode based on the environment.
// It checks if stdout is a TTY and if CI environment variables are set.
func DetectEnvironment() OutputMode {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModePlain
	}
	return ModeColor
}

// ResolveMode applies the user's --output flag to auto-detection.
// userFlag should be one of: "auto", "color", "plain", "ci", "json", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "color":
		return ModeColor
	case "plain", "ci":
		return ModePlain
	case "json":
		return ModeJSON
	default:
		return autoDetected
	}
}

// Profile returns the color profile reports are rendered with.
func (m OutputMode) Profile() termenv.Profile {
	if m == ModeColor {
		return output.ColorProfile()
	}
	return termenv.Ascii
}

// JSONLogs reports whether log records should be written as JSON.
func (m OutputMode) JSONLogs() bool {
	return m == ModeJSON
}
