package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/groeilab/internal/config"
	"github.com/san-kum/groeilab/internal/demo"
	"github.com/san-kum/groeilab/internal/growth"
)

const (
	stateMenu = iota
	stateConfig
	stateSim
)

type launcher struct {
	state       int
	cursor      int
	demos       []demo.Demo
	selected    demo.Demo
	params      map[string]int
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string
	errMsg      string
	live        Model
}

func NewLauncher() *launcher {
	return &launcher{
		state: stateMenu,
		demos: demo.List(),
	}
}

func (l launcher) Init() tea.Cmd { return nil }

func (l launcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return l.handleKey(msg)
	default:
		if l.state == stateSim {
			newLive, cmd := l.live.Update(msg)
			l.live = newLive.(Model)
			return l, cmd
		}
	}
	return l, nil
}

func (l launcher) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch l.state {
	case stateMenu:
		return l.menuKey(msg)
	case stateConfig:
		return l.configKey(msg)
	case stateSim:
		if msg.String() == "esc" {
			l.state = stateConfig
			return l, nil
		}
		newLive, cmd := l.live.Update(msg)
		l.live = newLive.(Model)
		return l, cmd
	}
	return l, nil
}

func (l launcher) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return l, tea.Quit
	case "up", "k":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "j":
		if l.cursor < len(l.demos)-1 {
			l.cursor++
		}
	case "enter", " ":
		l.selected = l.demos[l.cursor]
		l.state = stateConfig
		l.paramCursor = 0
		l.errMsg = ""
		l.setParams()
	}
	return l, nil
}

func (l *launcher) setParams() {
	d := l.selected
	frameMs := d.FrameMs
	if frameMs == 0 {
		frameMs = config.DefaultFrameMs
	}
	l.params = map[string]int{
		"start":       d.Defaults.Start,
		"k":           d.Defaults.K,
		"generations": d.Defaults.Generations,
		"interval_ms": frameMs,
	}
	l.paramNames = []string{"start", "k", "generations"}
	if d.Mode == demo.ModeAnimate {
		l.paramNames = append(l.paramNames, "interval_ms")
	}
}

func (l launcher) configKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if l.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.Atoi(l.editBuf); err == nil {
				l.params[l.paramNames[l.paramCursor]] = v
			}
			l.editing, l.editBuf = false, ""
		case "esc":
			l.editing, l.editBuf = false, ""
		case "backspace":
			if len(l.editBuf) > 0 {
				l.editBuf = l.editBuf[:len(l.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if c >= '0' && c <= '9' {
					l.editBuf += string(c)
				}
			}
		}
		return l, nil
	}

	switch msg.String() {
	case "q", "esc":
		l.state = stateMenu
		l.errMsg = ""
	case "up", "k":
		if l.paramCursor > 0 {
			l.paramCursor--
		}
	case "down", "j":
		if l.paramCursor < len(l.paramNames)-1 {
			l.paramCursor++
		}
	case "enter":
		l.editing = true
		l.editBuf = strconv.Itoa(l.params[l.paramNames[l.paramCursor]])
	case "left", "h":
		name := l.paramNames[l.paramCursor]
		if l.params[name] > 1 {
			l.params[name]--
		}
	case "right", "l":
		l.params[l.paramNames[l.paramCursor]]++
	case "s", " ":
		return l.start()
	}
	return l, nil
}

func (l launcher) start() (tea.Model, tea.Cmd) {
	p := growth.Params{
		Start:          l.params["start"],
		K:              l.params["k"],
		Generations:    l.params["generations"],
		IncludeParents: l.selected.Defaults.IncludeParents,
	}

	series, err := growth.Simulate(p)
	if err != nil {
		l.errMsg = err.Error()
		return l, nil
	}

	l.errMsg = ""
	l.live = NewModel(l.selected, series, l.params["interval_ms"], true)
	l.state = stateSim
	return l, l.live.Init()
}

func (l launcher) View() string {
	switch l.state {
	case stateMenu:
		return l.viewMenu()
	case stateConfig:
		return l.viewConfig()
	case stateSim:
		return l.live.View()
	}
	return ""
}

func (l launcher) viewMenu() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)

	b.WriteString("\n\n    " + h.Render("GROEILAB") + "\n")
	b.WriteString("    " + sub.Render("exponentiële groei in de klas") + "\n")
	b.WriteString("    " + sub.Render("─────────────────────────────") + "\n\n")

	for i, d := range l.demos {
		if i == l.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true).Render(fmt.Sprintf("%-14s", d.Name)),
				lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Render(d.Description)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				sub.Render(fmt.Sprintf("%-14s", d.Name)),
				sub.Render(d.Description)))
		}
	}

	b.WriteString("\n    " + sub.Render("j/k navigate · enter select · q quit") + "\n")
	return b.String()
}

func (l launcher) viewConfig() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(CurrentTheme.Primary).Bold(true)
	sub := lipgloss.NewStyle().Foreground(CurrentTheme.Muted)

	b.WriteString("\n\n    " + h.Render(strings.ToUpper(l.selected.Title)) + "\n")
	b.WriteString("    " + sub.Render(l.selected.Description) + "\n")
	b.WriteString("    " + sub.Render("─────────────────────────────") + "\n\n")

	for i, name := range l.paramNames {
		valStr := fmt.Sprintf("%6d", l.params[name])
		if l.editing && i == l.paramCursor {
			valStr = fmt.Sprintf("%6s", l.editBuf+"_")
		}
		if i == l.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).Render("▸"),
				lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true).Render(fmt.Sprintf("%-12s", name)),
				lipgloss.NewStyle().Foreground(CurrentTheme.Secondary).Bold(true).Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				sub.Render(fmt.Sprintf("%-12s", name)),
				sub.Render(valStr)))
		}
	}

	if l.errMsg != "" {
		b.WriteString("\n    " + warnStyle.Render(l.errMsg) + "\n")
	}

	b.WriteString("\n    " + sub.Render("j/k select · h/l adjust · enter edit · s start · esc back") + "\n")
	return b.String()
}

// RunInteractive launches the demo picker.
func RunInteractive() error {
	_, err := tea.NewProgram(NewLauncher(), tea.WithAltScreen()).Run()
	return err
}
