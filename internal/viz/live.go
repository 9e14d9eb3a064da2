package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/wavelab/internal/render"
)

const (
	minFPS = 1
	maxFPS = 120
)

type TickMsg time.Time

// Model drives the interactive wave view: an advancing frame counter,
// live parameter tuning, and a stats sidebar.
type Model struct {
	renderer      *render.Renderer
	frame         int
	fps           int
	running       bool
	paramKeys     []string
	selected      int
	initialParams map[string]float64
	showHelp      bool
}

// NewModel wraps a renderer for interactive display.
func NewModel(r *render.Renderer, fps int) Model {
	if fps <= 0 {
		fps = 20
	}
	params := r.Field.GetParams()
	keys := make([]string, 0, len(params))
	initial := make(map[string]float64, len(params))
	for k, v := range params {
		keys = append(keys, k)
		// A zero amplitude would divide the param bars by zero.
		if v == 0 {
			v = 1e-6
		}
		initial[k] = v
	}
	sort.Strings(keys)

	return Model{
		renderer:      r,
		fps:           fps,
		running:       true,
		paramKeys:     keys,
		initialParams: initial,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "+", "=":
			if m.fps < maxFPS {
				m.fps++
			}
		case "-", "_":
			if m.fps > minFPS {
				m.fps--
			}
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.frame++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	val := m.renderer.Field.GetParams()[key]
	m.renderer.Field.SetParam(key, val*factor)
}

func (m *Model) reset() {
	m.frame = 0
	for k, v := range m.initialParams {
		m.renderer.Field.SetParam(k, v)
	}
}

// View renders the wave canvas next to the stats sidebar.
func (m Model) View() string {
	canvasView := canvasStyle.Render(m.renderer.Render(m.frame))

	var s strings.Builder
	s.WriteString(headerStyle().Render("WAVELAB") + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	centers := m.renderer.Centerline(m.frame)
	chart := asciigraph.Plot(centers, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("centerline"))
	s.WriteString(graphStyle().Render(chart) + "\n\n")

	s.WriteString(labelStyle().Render("Frame") + valueStyle().Render(fmt.Sprintf("%d", m.frame)) + "\n")
	s.WriteString(labelStyle().Render("FPS") + valueStyle().Render(fmt.Sprintf("%d", m.fps)) + "\n")
	s.WriteString(labelStyle().Render("Theme") + valueStyle().Render(CurrentTheme.Name) + "\n")

	s.WriteString("\nWAVE\n")
	params := m.renderer.Field.GetParams()
	for i, k := range m.paramKeys {
		val, initial := params[k], m.initialParams[k]
		barWidth, ratio := 10, val/(2.0*initial)
		if ratio > 1 {
			ratio = 1
		} else if ratio < 0 {
			ratio = 0
		}
		filled := int(ratio * float64(barWidth))
		bar := "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
		line := fmt.Sprintf("%-6s %s %.2f", k, bar, val)
		if i == m.selected {
			s.WriteString(activeParamStyle().Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}

	s.WriteString(helpStyle().Render("\nSP:Pause R:Reset Q:Quit\nT:Theme +/-:Speed ?:Help\nTab:Select ↑↓:Tune"))
	statsView := statsStyle().Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset frame & amplitudes ║
║  Q        - Quit                     ║
║  Tab      - Cycle wave components    ║
║  Up/K     - Increase amplitude (+5%) ║
║  Down/J   - Decrease amplitude (-5%) ║
║  +/-      - Adjust frame rate        ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
