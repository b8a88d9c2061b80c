// Package output renders command results. Terminal output uses lipgloss
// tables and pterm badges, text output is the same layout unstyled, and
// JSON and YAML encode the pkg/types results directly.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/physq/pkg/logging"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders any pkg/types result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output
// when it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	log := logging.GetLogger("output")

	switch format {
	case FormatAuto:
		detected := FormatText
		if file, ok := output.(*os.File); ok {
			detected = DetectFormat(file)
		}
		log.Debug().Str("format", detected.String()).Msg("Detected output format")
		return NewRenderer(detected, output)
	case FormatTerminal:
		return newTableRenderer(output, true), nil
	case FormatText:
		return newTableRenderer(output, false), nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	case FormatYAML:
		return newYAMLRenderer(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
