package tui

import (
	"fmt"
	"math/cmplx"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/biflab/internal/branch"
	"github.com/san-kum/biflab/internal/cycle"
	"github.com/san-kum/biflab/internal/stability"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

// Browser is a bubbletea model that walks a branch point by point in
// logical order.
type Browser struct {
	sys        *branch.System
	br         *branch.Branch
	indices    []int
	cursor     *branch.Cursor
	classifier stability.Classifier

	width  int
	height int
}

func NewBrowser(sys *branch.System, br *branch.Branch, tolerance float64) *Browser {
	indices := branch.EnsureIndices(&br.Data)
	return &Browser{
		sys:        sys,
		br:         br,
		indices:    indices,
		cursor:     branch.NewCursor(indices),
		classifier: stability.NewClassifier(tolerance),
		width:      80,
		height:     24,
	}
}

func (b *Browser) Init() tea.Cmd { return nil }

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "left", "h":
			b.cursor.Prev()
		case "right", "l":
			b.cursor.Next()
		case "home", "g":
			b.cursor.Start()
		case "end", "G":
			b.cursor.End()
		case "b":
			b.jumpBifurcation(1)
		case "B":
			b.jumpBifurcation(-1)
		}
	}
	return b, nil
}

// jumpBifurcation moves to the nearest flagged point in the given
// logical direction, if any.
func (b *Browser) jumpBifurcation(dir int) {
	if len(b.br.Data.Bifurcations) == 0 || b.cursor.Len() == 0 {
		return
	}
	flagged := make(map[int]bool, len(b.br.Data.Bifurcations))
	for _, pos := range b.br.Data.Bifurcations {
		flagged[pos] = true
	}
	probe := *b.cursor
	for {
		before := probe.Rank()
		if dir > 0 {
			probe.Next()
		} else {
			probe.Prev()
		}
		if probe.Rank() == before {
			return
		}
		if flagged[probe.Pos()] {
			*b.cursor = probe
			return
		}
	}
}

func (b *Browser) View() string {
	var s strings.Builder

	kind := string(b.br.Type)
	s.WriteString(cyan.Render(fmt.Sprintf("%s  [%s]", b.br.Name, kind)))
	s.WriteString(dim.Render(fmt.Sprintf("  parameter %s, %d points", b.br.Parameter, b.cursor.Len())))
	s.WriteString("\n\n")

	pos := b.cursor.Pos()
	if pos < 0 {
		s.WriteString(dim.Render("branch has no points"))
		s.WriteString("\n\n" + b.helpLine())
		return s.String()
	}

	pt := &b.br.Data.Points[pos]
	logical := b.indices[pos]

	s.WriteString(white.Render(fmt.Sprintf("point %d of %d", b.cursor.Rank()+1, b.cursor.Len())))
	s.WriteString(dim.Render(fmt.Sprintf("  (logical %d, storage %d)", logical, pos)))
	s.WriteString("\n")

	label, style := b.describe(pt, logical)
	s.WriteString(style.Render(label))
	s.WriteString("\n\n")

	s.WriteString(b.paramLines(pt))
	s.WriteString(b.stateLines(pt))
	s.WriteString(b.eigenLines(pt))
	if meta, ok := b.br.Data.Meta.(branch.CycleMeta); ok {
		s.WriteString(b.cycleLines(pt, meta))
	}

	s.WriteString("\n" + b.helpLine())
	return s.String()
}

func (b *Browser) describe(pt *branch.Point, logical int) (string, lipgloss.Style) {
	derived := b.derive(pt)
	kind := stability.Resolve(pt.Stability, derived)
	label := stability.Label(logical, kind)
	switch {
	case kind.IsBifurcation():
		return label, magenta
	case kind == stability.Stable:
		return label, green
	case kind == stability.Unstable:
		return label, red
	default:
		return label, dim
	}
}

func (b *Browser) derive(pt *branch.Point) stability.Kind {
	eigen := pt.Eigen()
	switch {
	case b.br.Type == branch.LimitCycle:
		return b.classifier.Cycle(eigen)
	case b.sys.Kind == branch.Map:
		return b.classifier.Map(eigen)
	default:
		return b.classifier.Flow(eigen)
	}
}

func (b *Browser) paramLines(pt *branch.Point) string {
	var s strings.Builder
	params := branch.Reconstruct(b.sys.ParamNames, b.sys.Params, b.br, pt)
	for i, name := range b.sys.ParamNames {
		if i >= len(params) {
			break
		}
		s.WriteString(fmt.Sprintf("  %s %s\n",
			dim.Render(fmt.Sprintf("%-10s", name)),
			yellow.Render(fmt.Sprintf("%.6g", params[i]))))
	}
	return s.String()
}

func (b *Browser) stateLines(pt *branch.Point) string {
	if b.br.Type == branch.LimitCycle {
		return ""
	}
	var s strings.Builder
	for i, name := range b.sys.VarNames {
		if i >= len(pt.State) {
			break
		}
		s.WriteString(fmt.Sprintf("  %s %s\n",
			dim.Render(fmt.Sprintf("%-10s", name)),
			white.Render(fmt.Sprintf("%.6g", pt.State[i]))))
	}
	return s.String()
}

func (b *Browser) eigenLines(pt *branch.Point) string {
	eigen := pt.Eigen()
	if len(eigen) == 0 {
		return ""
	}
	var s strings.Builder
	what := "eigenvalues"
	if b.br.Type == branch.LimitCycle {
		what = "multipliers"
	}
	s.WriteString(dim.Render("  "+what) + "\n")
	for _, ev := range eigen {
		s.WriteString(fmt.Sprintf("    %.5g %+.5gi  %s\n",
			real(ev), imag(ev),
			dim.Render(fmt.Sprintf("|.|=%.5g", cmplx.Abs(ev)))))
	}
	return s.String()
}

func (b *Browser) cycleLines(pt *branch.Point, meta branch.CycleMeta) string {
	profile, period := cycle.ExtractProfile(pt.State, b.sys.Dim(), meta.Ntst, meta.Ncol)
	sum := cycle.Summarize(profile, period)
	if len(sum.Vars) == 0 {
		return dim.Render("  cycle profile unavailable") + "\n"
	}
	var s strings.Builder
	s.WriteString(fmt.Sprintf("  %s %s\n", dim.Render("period    "),
		yellow.Render(fmt.Sprintf("%.6g", sum.Period))))
	for i, vs := range sum.Vars {
		name := fmt.Sprintf("x%d", i)
		if i < len(b.sys.VarNames) {
			name = b.sys.VarNames[i]
		}
		s.WriteString(fmt.Sprintf("  %s range %.4g  mean %.4g  rms %.4g\n",
			dim.Render(fmt.Sprintf("%-10s", name)), vs.Range, vs.Mean, vs.RMS))
	}
	return s.String()
}

func (b *Browser) helpLine() string {
	return dim.Render("h/l prev/next   g/G start/end   b/B bifurcation   q quit")
}
