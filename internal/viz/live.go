package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/groeilab/internal/config"
	"github.com/san-kum/groeilab/internal/demo"
	"github.com/san-kum/groeilab/internal/format"
	"github.com/san-kum/groeilab/internal/growth"
	"github.com/san-kum/groeilab/internal/table"
)

const (
	canvasWidth  = 60
	canvasHeight = 18
)

type TickMsg time.Time

// Model holds all mutable session state for one demo view: the current
// frame, the play flag, and the display toggles. Nothing lives in package
// globals, so View stays a function of the model alone.
type Model struct {
	demo      demo.Demo
	series    *growth.Series
	frame     int
	playing   bool
	frameMs   int
	logScale  bool
	showTable bool
	canvas    *Canvas
	tbl       btable.Model
	width     int
	height    int
}

// NewModel prepares the demo view at generation 0. Animated demos start
// playing immediately; paginated demos wait for arrow keys.
func NewModel(d demo.Demo, s *growth.Series, frameMs int, logScale bool) Model {
	if frameMs <= 0 {
		frameMs = config.DefaultFrameMs
	}

	headers := table.Headers(d.Locale)
	columns := []btable.Column{
		{Title: headers[0], Width: 14},
		{Title: headers[1], Width: 20},
		{Title: headers[2], Width: 20},
		{Title: headers[3], Width: 14},
	}
	rows := make([]btable.Row, 0, len(s.Counts))
	for _, r := range table.Build(s, d.Locale) {
		rows = append(rows, btable.Row{r.Label, r.Exact, r.Abbrev, r.Scientific})
	}
	tbl := btable.New(
		btable.WithColumns(columns),
		btable.WithRows(rows),
		btable.WithHeight(8),
		btable.WithFocused(true),
	)
	st := btable.DefaultStyles()
	st.Selected = st.Selected.Foreground(CurrentTheme.Accent).Bold(true)
	tbl.SetStyles(st)

	return Model{
		demo:     d,
		series:   s,
		playing:  d.Mode == demo.ModeAnimate,
		frameMs:  frameMs,
		logScale: logScale,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		tbl:      tbl,
	}
}

func (m Model) Init() tea.Cmd {
	if m.demo.Mode == demo.ModeAnimate {
		return m.tick()
	}
	return nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Duration(m.frameMs)*time.Millisecond,
		func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.demo.Mode == demo.ModeAnimate {
				m.playing = !m.playing
			} else {
				m.step(1)
			}
		case "r":
			m.frame = 0
			m.playing = m.demo.Mode == demo.ModeAnimate
		case "]", "right", "l":
			m.step(1)
		case "[", "left", "h":
			m.step(-1)
		case "+", "=":
			m.frameMs = clampMs(m.frameMs - 50)
		case "-", "_":
			m.frameMs = clampMs(m.frameMs + 50)
		case "s":
			m.logScale = !m.logScale
		case "t":
			m.showTable = !m.showTable
		case "c":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		default:
			if m.showTable {
				var cmd tea.Cmd
				m.tbl, cmd = m.tbl.Update(msg)
				return m, cmd
			}
		}
	case TickMsg:
		if m.playing {
			if m.frame < m.series.Generations() {
				m.frame++
			}
			if m.frame == m.series.Generations() {
				m.playing = false
			}
		}
		if m.demo.Mode == demo.ModeAnimate {
			return m, m.tick()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

// step moves the visible generation and pauses any running animation:
// scrubbing and playing at the same time reads as flicker.
func (m *Model) step(dir int) {
	m.playing = false
	m.frame += dir
	if m.frame < 0 {
		m.frame = 0
	}
	if m.frame > m.series.Generations() {
		m.frame = m.series.Generations()
	}
}

func clampMs(ms int) int {
	if ms < config.MinFrameMs {
		return config.MinFrameMs
	}
	if ms > config.MaxFrameMs {
		return config.MaxFrameMs
	}
	return ms
}

func (m Model) View() string {
	m.canvas.Clear()
	tileErr := DrawGeneration(m.canvas, m.series.Counts, m.frame,
		m.series.Params.Factor(), m.demo.Shape)

	canvasBlock := m.canvas.String()
	if tileErr != nil {
		// past the tile budget only the curve remains readable
		canvasBlock = warnStyle.Render(tooManyLabel(m.demo.Locale)) + "\n"
	}
	canvasView := canvasStyle.Render(canvasBlock)

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(CurrentTheme.Primary).Render(strings.ToUpper(m.demo.Title)) + "\n")
	s.WriteString(m.status() + "\n\n")

	if m.frame >= 1 {
		data := make([]float64, m.frame+1)
		for i := 0; i <= m.frame; i++ {
			v := float64(m.series.Counts[i])
			if m.logScale {
				v = math.Log10(v)
			}
			data[i] = v
		}
		caption := countWord(m.demo.Locale)
		if m.logScale {
			caption += " (log10)"
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(6),
			asciigraph.Width(36),
			asciigraph.Caption(caption),
		)
		s.WriteString(graphStyle.Foreground(CurrentTheme.Secondary).Render(chart) + "\n\n")
	}

	count := m.series.Count(m.frame)
	loc := m.demo.Locale
	s.WriteString(activeParamStyle.Foreground(CurrentTheme.Accent).Render(format.GenerationLabel(m.frame, loc)) + "\n")
	s.WriteString(labelStyle.Render(countWord(loc)) + valueStyle.Render(format.Exact(count, loc)) + "\n")
	s.WriteString(labelStyle.Render("verkort") + valueStyle.Render(format.Abbrev(count, loc)) + "\n")
	s.WriteString(labelStyle.Render("wetensch.") + valueStyle.Render(format.Scientific(count)) + "\n\n")

	p := m.series.Params
	s.WriteString(labelStyle.Render("start") + valueStyle.Render(fmt.Sprintf("%d", p.Start)) + "\n")
	s.WriteString(labelStyle.Render("k") + valueStyle.Render(fmt.Sprintf("%d", p.K)) + "\n")
	s.WriteString(labelStyle.Render("factor") + valueStyle.Render(fmt.Sprintf("×%d", p.Factor())) + "\n")
	if m.demo.Mode == demo.ModeAnimate {
		s.WriteString(labelStyle.Render("interval") + valueStyle.Render(fmt.Sprintf("%dms", m.frameMs)) + "\n")
	}

	if m.showTable {
		s.WriteString("\n" + m.tbl.View() + "\n")
	}

	s.WriteString(helpStyle.Render("\n──────────────────────\n" + m.helpLine()))

	statsView := statsStyle.Render(s.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
}

func (m Model) status() string {
	if m.demo.Mode == demo.ModePaginate {
		return fmt.Sprintf("PAGE %d/%d", m.frame, m.series.Generations())
	}
	if m.playing {
		return "RUNNING"
	}
	if m.frame == m.series.Generations() {
		return "DONE"
	}
	return "PAUSED"
}

func (m Model) helpLine() string {
	if m.demo.Mode == demo.ModePaginate {
		return "←/→:Page R:Reset T:Table\nS:Scale C:Theme Q:Quit"
	}
	return "SP:Pause R:Reset [ ]:Scrub\n+/-:Speed S:Scale T:Table\nC:Theme Q:Quit"
}

func countWord(loc format.Locale) string {
	switch loc.Tag {
	case "es":
		return "cantidad"
	case "en":
		return "count"
	default:
		return "aantal"
	}
}

func tooManyLabel(loc format.Locale) string {
	switch loc.Tag {
	case "es":
		return "demasiadas fichas para dibujar; mira la curva"
	case "en":
		return "too many tiles to draw; see the curve"
	default:
		return "te veel tegels om te tekenen; zie de grafiek"
	}
}
