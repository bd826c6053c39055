package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/plus/utils/mathx"
	"github.com/msto63/plus/utils/stringx"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorValue   = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Styles for pretty output
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorValue).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// printer writes command results. Plain output is one bare value per line
// so it can be used in scripts. Pretty output labels each value.
type printer struct {
	w         io.Writer
	pretty    bool
	precision int
}

func newPrinter(w io.Writer, style string, precision int) *printer {
	return &printer{
		w:         w,
		pretty:    style == "pretty",
		precision: precision,
	}
}

// value prints a preformatted result
func (p *printer) value(label, v string) {
	if !p.pretty {
		fmt.Fprintln(p.w, v)
		return
	}
	fmt.Fprintln(p.w, labelStyle.Render(label+":")+" "+valueStyle.Render(v))
}

func (p *printer) floatValue(label string, f float64) {
	p.value(label, p.formatFloat(f))
}

func (p *printer) intValue(label string, n int) {
	p.value(label, strconv.Itoa(n))
}

func (p *printer) boolValue(label string, b bool) {
	p.value(label, strconv.FormatBool(b))
}

func (p *printer) complexValue(label string, c mathx.Complex) {
	p.value(label, p.formatComplex(c))
}

func (p *printer) floatList(label string, values []float64) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = p.formatFloat(v)
	}
	p.value(label, strings.Join(parts, " "))
}

// table prints name/value rows. Pretty output frames the rows in a box.
func (p *printer) table(title string, rows [][2]string) {
	width := 0
	for _, row := range rows {
		if n := len([]rune(row[0])); n > width {
			width = n
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		name := stringx.PadRight(row[0], width, ' ')
		if p.pretty {
			lines[i] = labelStyle.Render(name) + "  " + valueStyle.Render(row[1])
		} else {
			lines[i] = name + "  " + row[1]
		}
	}

	if !p.pretty {
		fmt.Fprintln(p.w, strings.Join(lines, "\n"))
		return
	}
	body := titleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
	fmt.Fprintln(p.w, boxStyle.Render(body))
}

// formatFloat renders f with the configured precision, or the shortest
// exact form when precision is negative
func (p *printer) formatFloat(f float64) string {
	if p.precision < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', p.precision, 64)
}

// formatComplex renders c like Complex.String with the configured precision
func (p *printer) formatComplex(c mathx.Complex) string {
	if p.precision < 0 {
		return c.String()
	}
	sep := " + "
	if c.Imaginary < 0 {
		sep = " - "
	}
	return p.formatFloat(c.Real) + sep + p.formatFloat(math.Abs(c.Imaginary)) + "i"
}
