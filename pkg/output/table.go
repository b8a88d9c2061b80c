package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arthur-debert/physq/pkg/style"
	"github.com/arthur-debert/physq/pkg/types"
)

// tableRenderer backs both FormatTerminal and FormatText; only the styling
// differs.
type tableRenderer struct {
	w      io.Writer
	styled bool
}

func newTableRenderer(w io.Writer, styled bool) *tableRenderer {
	return &tableRenderer{w: w, styled: styled}
}

func (r *tableRenderer) paint(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *tableRenderer) println(lines ...string) error {
	_, err := fmt.Fprintln(r.w, strings.Join(lines, "\n"))
	return err
}

func (r *tableRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.ConvertResult:
		return r.renderConvert(v)
	case *types.DimResult:
		return r.renderDim(v)
	case *types.CheckResult:
		return r.renderCheck(v)
	case *types.UnitsResult:
		return r.renderUnits(v)
	case *types.PaceResult:
		return r.renderPace(v)
	case *types.GenConfigResult:
		return r.renderGenConfig(v)
	case string:
		return r.println(v)
	default:
		_, err := fmt.Fprintf(r.w, "%+v\n", result)
		return err
	}
}

func (r *tableRenderer) RenderError(err error) error {
	return r.println(r.paint(style.ErrorStyle, "Error:") + " " + err.Error())
}

func (r *tableRenderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *tableRenderer) renderConvert(res *types.ConvertResult) error {
	lines := make([]string, 0, len(res.Conversions)+1)
	for _, c := range res.Conversions {
		line := fmt.Sprintf("%s = %s", c.Input, r.quantity(c.Formatted))
		if c.Clock != "" {
			line += " " + r.paint(style.MutedStyle, "("+c.Clock+")")
		}
		lines = append(lines, line)
	}
	if len(res.Conversions) > 0 {
		lines = append(lines, r.paint(style.MutedStyle, "dimension: ")+r.dimension(res.Conversions[0].Dimension, res.Conversions[0].DimensionName))
	}
	return r.println(lines...)
}

func (r *tableRenderer) renderDim(res *types.DimResult) error {
	rows := [][]string{
		{"expression", res.Expression},
		{"dimension", r.dimension(res.Dimension, res.DimensionName)},
		{"scale", formatFloat(res.Scale)},
	}
	if res.Affine {
		rows = append(rows, []string{"offset", formatFloat(res.Offset)})
	}
	rows = append(rows, []string{"base units", r.paint(style.UnitStyle, res.Base)})
	if len(res.Units) > 0 {
		rows = append(rows, []string{"compatible", strings.Join(res.Units, ", ")})
	}
	return r.println(r.table(nil, rows))
}

func (r *tableRenderer) renderCheck(res *types.CheckResult) error {
	status := style.StatusIncompatible
	if res.Compatible {
		status = style.StatusCompatible
	}

	badge := "[" + style.Label(status) + "]"
	if r.styled {
		badge = style.Badge(status)
	}

	lines := []string{
		badge,
		fmt.Sprintf("  %s  %s", res.Left, r.dimension(res.LeftDimension, "")),
		fmt.Sprintf("  %s  %s", res.Right, r.dimension(res.RightDimension, "")),
	}
	if res.Ratio != nil {
		lines = append(lines, fmt.Sprintf("  ratio %s", r.paint(style.ValueStyle, formatFloat(*res.Ratio))))
	}
	return r.println(lines...)
}

func (r *tableRenderer) renderUnits(res *types.UnitsResult) error {
	var out []string
	if res.Dimension != "" {
		out = append(out, r.paint(style.TitleStyle, "Units of dimension "+res.Dimension))
	}
	if len(res.Units) == 0 {
		out = append(out, r.paint(style.MutedStyle, "No units found"))
		return r.println(out...)
	}

	rows := make([][]string, len(res.Units))
	for i, u := range res.Units {
		prefix := ""
		if u.Prefixable {
			prefix = "yes"
		}
		offset := ""
		if u.Offset != 0 {
			offset = formatFloat(u.Offset)
		}
		rows[i] = []string{u.Symbol, u.Name, u.Dimension, formatFloat(u.Scale), offset, prefix, strings.Join(u.Aliases, ", ")}
	}
	out = append(out, r.table([]string{"Symbol", "Name", "Dimension", "Scale", "Offset", "Prefixes", "Aliases"}, rows))

	if len(res.Prefixes) > 0 {
		prows := make([][]string, len(res.Prefixes))
		for i, p := range res.Prefixes {
			prows[i] = []string{p.Symbol, p.Name, formatFloat(p.Factor)}
		}
		out = append(out, "", r.table([]string{"Prefix", "Name", "Factor"}, prows))
	}
	return r.println(out...)
}

func (r *tableRenderer) renderPace(res *types.PaceResult) error {
	headers := append([]string{res.SpeedUnit}, res.Distances...)
	rows := make([][]string, len(res.Rows))
	for i, row := range res.Rows {
		rows[i] = append([]string{strconv.FormatFloat(row.Speed, 'f', 1, 64)}, row.Times...)
	}
	return r.println(r.table(headers, rows))
}

func (r *tableRenderer) renderGenConfig(res *types.GenConfigResult) error {
	if len(res.FilesWritten) == 0 {
		return r.println(res.ConfigContent)
	}
	lines := make([]string, len(res.FilesWritten))
	for i, path := range res.FilesWritten {
		lines[i] = r.paint(style.SuccessStyle, "Wrote") + " " + path
	}
	return r.println(lines...)
}

// table renders rows with lipgloss/table; nil headers draw a key/value
// table with a highlighted first column.
func (r *tableRenderer) table(headers []string, rows [][]string) string {
	t := table.New().Rows(rows...)
	if headers != nil {
		t = t.Headers(headers...)
	}

	if !r.styled {
		return t.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(row, col int) lipgloss.Style { return lipgloss.NewStyle().Padding(0, 1) }).
			String()
	}

	return t.Border(lipgloss.RoundedBorder()).
		BorderStyle(style.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return style.HeaderStyle
			case headers == nil && col == 0:
				return style.HeaderStyle
			default:
				return style.CellStyle
			}
		}).
		String()
}

func (r *tableRenderer) quantity(formatted string) string {
	value, unit, found := strings.Cut(formatted, " ")
	if !found {
		return r.paint(style.ValueStyle, formatted)
	}
	return r.paint(style.ValueStyle, value) + " " + r.paint(style.UnitStyle, unit)
}

func (r *tableRenderer) dimension(dim, name string) string {
	text := dim
	if name != "" {
		text += " (" + name + ")"
	}
	return r.paint(style.DimensionStyle, text)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
