package topics

import (
	"os"

	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for the terminal. format is the topic
// file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats
// pass through untouched, as does anything glamour fails on.
type GlamourRenderer struct {
	// Style is "auto", a glamour style name ("dark", "light", "notty") or
	// the path of a custom style.
	Style string
	// Width wraps output at this column; 0 keeps glamour's default.
	Width int
	// Plain is consulted on every render; when it reports true the
	// uncolored "notty" style is used. NO_COLOR has the same effect.
	Plain func() bool
}

// NewGlamourRenderer returns a renderer that picks its style from the
// terminal.
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) plain() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return r.Plain != nil && r.Plain()
}

func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch {
	case r.plain():
		options = append(options, glamour.WithStylePath("notty"))
	case r.Style != "" && r.Style != "auto":
		options = append(options, glamour.WithStylePath(r.Style))
	default:
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
