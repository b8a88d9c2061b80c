package physq

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// plainHelp reports whether help text should be left unstyled: stdout is
// not a terminal or NO_COLOR is set.
func plainHelp() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	fd := os.Stdout.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func styled(s *pterm.Style) func(string) string {
	return func(text string) string {
		if plainHelp() {
			return text
		}
		return s.Sprint(text)
	}
}

// initTemplateFormatting registers the helpers used by the usage template.
func initTemplateFormatting() {
	bold := styled(pterm.NewStyle(pterm.Bold))
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":  bold,
		"upper": strings.ToUpper,
		"boldUpper": func(s string) string {
			return bold(strings.ToUpper(s))
		},
		"muted": styled(pterm.NewStyle(pterm.FgGray)),
	})
}
