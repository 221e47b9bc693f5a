package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/matchain/mcm"
)

// Inks are ANSI-256 colours; lipgloss drops them when stdout is not a TTY.
var (
	inkAccent  = lipgloss.Color("69")
	inkPass    = lipgloss.Color("78")
	inkFail    = lipgloss.Color("203")
	inkCaution = lipgloss.Color("178")
	inkLabel   = lipgloss.Color("244")
	inkFaint   = lipgloss.Color("238")
	inkPlain   = lipgloss.Color("252")
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(inkAccent)
	labelStyle   = lipgloss.NewStyle().Foreground(inkLabel).Width(15)
	figureStyle  = lipgloss.NewStyle().Bold(true).Foreground(inkAccent)
	textStyle    = lipgloss.NewStyle().Foreground(inkPlain)
	asideStyle   = lipgloss.NewStyle().Foreground(inkFaint).PaddingLeft(4)
	cellStyle    = lipgloss.NewStyle().Align(lipgloss.Right)
)

// verdict is what a status line reports.
type verdict int

const (
	verdictPass verdict = iota
	verdictFail
	verdictCaution
	verdictNote
)

var verdictMarks = [...]struct {
	glyph string
	style lipgloss.Style
}{
	verdictPass:    {"●", lipgloss.NewStyle().Foreground(inkPass)},
	verdictFail:    {"■", lipgloss.NewStyle().Foreground(inkFail)},
	verdictCaution: {"▲", lipgloss.NewStyle().Foreground(inkCaution)},
	verdictNote:    {"∙", lipgloss.NewStyle().Foreground(inkLabel)},
}

// printer writes a command's human-readable output.
type printer struct {
	w io.Writer
}

func newPrinter(cmd *cobra.Command) printer {
	return printer{w: cmd.OutOrStdout()}
}

func (p printer) heading(s string) {
	fmt.Fprintln(p.w, headingStyle.Render(s))
}

// status prints one line led by the mark of v.
func (p printer) status(v verdict, format string, args ...any) {
	m := verdictMarks[v]
	fmt.Fprintln(p.w, m.style.Render(m.glyph)+" "+fmt.Sprintf(format, args...))
}

// aside prints an indented, faint line under the previous status.
func (p printer) aside(format string, args ...any) {
	fmt.Fprintln(p.w, asideStyle.Render(fmt.Sprintf(format, args...)))
}

// field prints a "label  value" row; ints are drawn as figures.
func (p printer) field(label string, value any) {
	v := textStyle.Render(fmt.Sprint(value))
	if n, ok := value.(int); ok {
		v = figureStyle.Render(strconv.Itoa(n))
	}
	fmt.Fprintln(p.w, "  "+labelStyle.Render(label)+v)
}

// table prints the upper triangle of t. Cells below the diagonal carry no
// meaning and are drawn as dots.
func (p printer) table(title string, t mcm.Table) {
	p.aside("%s", title)

	width := 1
	for i, row := range t {
		for _, v := range row[i:] {
			width = max(width, len(strconv.Itoa(v)))
		}
	}
	cell := cellStyle.Width(width)

	for i, row := range t {
		cells := make([]string, len(row))
		for j, v := range row {
			s := "·"
			if j >= i {
				s = strconv.Itoa(v)
			}
			cells[j] = cell.Render(s)
		}
		fmt.Fprintln(p.w, "  "+strings.Join(cells, " "))
	}
}
