package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors adapt to light and dark terminal backgrounds.

// Chrome: headings, table rules and secondary text.
var (
	PrimaryColor = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	BorderColor  = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
)

// Verdicts: compatible, incompatible and warnings.
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
)

// Parts of a rendered quantity. A magnitude, its unit and the dimension
// it carries each get their own hue so "5 km  [L]" reads at a glance.
var (
	ValueColor     = lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#38BDF8"}
	UnitColor      = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#C4B5FD"}
	DimensionColor = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}
)
