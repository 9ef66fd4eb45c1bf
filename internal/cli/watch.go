package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/matzehuels/babelgraph/pkg/graph"
	"github.com/matzehuels/babelgraph/pkg/layout"
)

// sliderStep is how far one +/- key press moves the speed slider.
const sliderStep = 50

type tickMsg time.Time

// watchModel drives an [layout.Arranger] interactively: every tick runs one
// relaxation step on g while the arranger is enabled.
type watchModel struct {
	g        *graph.Graph
	arranger *layout.Arranger
	steps    int
	maxSteps int // 0 runs until quit
	moved    float64
	quitting bool
	discard  bool // quit without keeping the relaxed positions
}

func newWatchModel(g *graph.Graph, a *layout.Arranger, maxSteps int) watchModel {
	a.Enabled = true
	return watchModel{g: g, arranger: a, maxSteps: maxSteps}
}

func (m watchModel) tick() tea.Cmd {
	return tea.Tick(m.arranger.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return m.tick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.quitting, m.discard = true, true
			return m, tea.Quit
		case " ":
			m.arranger.Enabled = !m.arranger.Enabled
		case "+", "=":
			m.arranger.SetDelay(m.arranger.Slider() + sliderStep)
		case "-":
			m.arranger.SetDelay(m.arranger.Slider() - sliderStep)
		}
		return m, nil

	case tickMsg:
		before := positions(m.g)
		if m.arranger.Tick(m.g) {
			m.steps++
			m.moved = largestMove(m.g, before)
		}
		if m.maxSteps > 0 && m.steps >= m.maxSteps {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

var (
	styleWatchBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Padding(0, 1)
	styleWatchLabel = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	styleSliderFill = lipgloss.NewStyle().Foreground(colorCyan)
)

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}

	state := styleWarn.Render("paused")
	if m.arranger.Enabled {
		state = styleOK.Render("running")
	}
	steps := fmt.Sprint(m.steps)
	if m.maxSteps > 0 {
		steps = fmt.Sprintf("%d/%d", m.steps, m.maxSteps)
	}

	rows := []string{
		styleTitle.Render("Relaxing layout"),
		"",
		styleWatchLabel.Render("state") + state,
		styleWatchLabel.Render("steps") + styleNumber.Render(steps),
		styleWatchLabel.Render("moved") + styleValue.Render(formatFloat(m.moved)),
		styleWatchLabel.Render("interval") + styleValue.Render(m.arranger.Interval.String()),
		styleWatchLabel.Render("speed") + slider(m.arranger.Slider(), 20),
		"",
		styleDim.Render("space pause · +/- speed · q save · esc discard"),
	}
	return styleWatchBox.Render(strings.Join(rows, "\n")) + "\n"
}

// slider draws pos in [1, 1000] as a bar of the given width.
func slider(pos, width int) string {
	filled := pos * width / 1000
	return styleSliderFill.Render(strings.Repeat("█", filled)) +
		styleDim.Render(strings.Repeat("░", width-filled))
}

func positions(g *graph.Graph) map[int]r3.Vec {
	out := make(map[int]r3.Vec, g.VertexCount())
	g.Vertices(func(v graph.Vertex) bool {
		out[v.ID] = v.Position
		return true
	})
	return out
}

// largestMove returns the largest distance any vertex moved since before.
func largestMove(g *graph.Graph, before map[int]r3.Vec) float64 {
	var d float64
	g.Vertices(func(v graph.Vertex) bool {
		d = max(d, r3.Norm(r3.Sub(v.Position, before[v.ID])))
		return true
	})
	return d
}
