package style

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Status is the outcome of a dimensional compatibility check.
type Status string

const (
	StatusCompatible   Status = "compatible"   // Same dimension, convertible
	StatusIncompatible Status = "incompatible" // Different dimensions
	StatusError        Status = "error"        // One side failed to parse
)

// StatusStyle returns the pterm style used for a status badge.
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusCompatible:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case StatusIncompatible:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case StatusError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Badge renders status as a padded, upper-case label.
func Badge(status Status) string {
	return StatusStyle(status).Sprint(fmt.Sprintf(" %s ", Label(status)))
}

// Indicator is the single-character form of Badge.
func Indicator(status Status) string {
	switch status {
	case StatusCompatible:
		return pterm.FgGreen.Sprint("✓")
	case StatusIncompatible:
		return pterm.FgYellow.Sprint("≠")
	default:
		return pterm.FgRed.Sprint("✗")
	}
}

// Label is the upper-case word shown in a badge.
func Label(status Status) string {
	switch status {
	case StatusCompatible:
		return "COMPATIBLE"
	case StatusIncompatible:
		return "INCOMPATIBLE"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
