package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/controller"
	"github.com/san-kum/sortviz/internal/engine"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	historyCapacity = 600
	panelWidth      = 36
	speedFactor     = 2.0
)

// App is the interactive sorting view.
type App struct {
	session *controller.Session
	feed    *controller.Feed
	cfg     config.Config
	algos   []engine.Algorithm
	cursor  int

	data      []int
	highlight []int
	running   bool
	sorted    bool
	events    int
	disorder  []float64
	last      *controller.Result

	theme         Theme
	showHelp      bool
	width, height int
}

// NewApp builds the view over session. The session must report to feed.
// When the session has no array yet a random one is generated from cfg.
func NewApp(session *controller.Session, feed *controller.Feed, cfg config.Config) App {
	algos := engine.Algorithms()
	cursor := 0
	for i, a := range algos {
		if a.ID == cfg.Algorithm {
			cursor = i
		}
	}

	m := App{
		session: session,
		feed:    feed,
		cfg:     cfg,
		algos:   algos,
		cursor:  cursor,
		theme:   GetTheme(cfg.Theme),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	if len(session.Array()) == 0 {
		_ = session.Generate(cfg.Size, cfg.Values)
	}
	m.reset(session.Array())
	return m
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the user quits. Any active sort is cancelled on the way out.
func Run(session *controller.Session, feed *controller.Feed, cfg config.Config) error {
	p := tea.NewProgram(NewApp(session, feed, cfg), tea.WithAltScreen())
	_, err := p.Run()
	session.Cancel()
	feed.Close()
	return err
}

// listen waits for the next session notification. Exactly one listen command
// is outstanding at a time; each feed message schedules the next. It returns
// nil once the feed is closed.
func listen(feed *controller.Feed) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-feed.Messages():
			return msg
		case <-feed.Done():
			return nil
		}
	}
}

func (m App) Init() tea.Cmd { return listen(m.feed) }

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case controller.StartedMsg:
		m.running, m.sorted = true, false
		m.events = 0
		m.last = nil
		m.disorder = []float64{float64(array.Inversions(m.data))}
		return m, listen(m.feed)
	case controller.StepMsg:
		m.data = msg.Snapshot
		m.highlight = msg.Highlight
		m.events++
		m.pushDisorder()
		return m, listen(m.feed)
	case controller.FinishedMsg:
		res := controller.Result(msg)
		m.running = false
		m.highlight = nil
		m.data = res.Final
		m.sorted = !res.Cancelled && len(res.Final) > 0
		m.last = &res
		return m, listen(m.feed)
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.session.Cancel()
		m.feed.Close()
		return m, tea.Quit
	case "g":
		if m.running {
			return m, nil
		}
		if err := m.session.Generate(m.cfg.Size, m.cfg.Values); err == nil {
			m.reset(m.session.Array())
		}
	case "enter", "s":
		if m.running {
			return m, nil
		}
		if err := m.session.Start(context.Background(), m.algos[m.cursor].ID); err == nil {
			m.running = true
		}
	case "x", "esc":
		if m.running {
			m.session.Cancel()
		}
	case "left", "h":
		m.cursor = (m.cursor - 1 + len(m.algos)) % len(m.algos)
	case "right", "l":
		m.cursor = (m.cursor + 1) % len(m.algos)
	case "+", "=":
		m.session.SetSpeed(m.session.Speed() / speedFactor)
	case "-", "_":
		m.session.SetSpeed(m.session.Speed() * speedFactor)
	case "t":
		m.theme = NextTheme(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *App) reset(data []int) {
	m.data = data
	m.highlight = nil
	m.sorted = false
	m.events = 0
	m.last = nil
	m.disorder = []float64{float64(array.Inversions(data))}
}

func (m *App) pushDisorder() {
	m.disorder = append(m.disorder, float64(array.Inversions(m.data)))
	if len(m.disorder) > historyCapacity {
		m.disorder = m.disorder[len(m.disorder)-historyCapacity:]
	}
}

func (m App) View() string {
	if m.showHelp {
		return m.helpView()
	}

	header := m.headerView()
	footer := helpStyle.Render(m.footer())

	rows := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - 4
	if rows < 5 {
		rows = 5
	}
	cols := m.width - panelWidth - 6
	if cols < 10 {
		cols = 10
	}

	chart := chartStyle.Render(Bars(m.data, m.highlight, rows, cols, m.theme, m.sorted))
	body := lipgloss.JoinHorizontal(lipgloss.Top, chart, statsStyle.Render(m.panelView()))
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m App) headerView() string {
	var s strings.Builder
	s.WriteString(m.theme.titleStyle().Render("SORTVIZ"))
	s.WriteString("  ")
	for i, a := range m.algos {
		if i > 0 {
			s.WriteString(menuOther.Render(" · "))
		}
		if i == m.cursor {
			s.WriteString(menuCurrent.Foreground(m.theme.Highlight).Render(a.ID))
		} else {
			s.WriteString(menuOther.Render(a.ID))
		}
	}
	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(s.String())
}

func (m App) status() string {
	switch {
	case m.running:
		return "SORTING"
	case m.last != nil && m.last.Cancelled:
		return "CANCELLED"
	case m.sorted:
		return "SORTED"
	}
	return "READY"
}

func (m App) panelView() string {
	var s strings.Builder
	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + m.theme.valueStyle().Render(value) + "\n")
	}

	s.WriteString(m.theme.titleStyle().Render(m.algos[m.cursor].Label(m.cfg.Locale)) + "\n\n")
	s.WriteString(labelStyle.Render("Status") + m.theme.statusStyle(m.running).Render(m.status()) + "\n")
	row("Size", fmt.Sprintf("%d", len(m.data)))
	if speed := m.session.Speed(); speed > 0 {
		row("Delay", (time.Duration(speed * float64(time.Second))).String())
	} else {
		row("Delay", "unpaced")
	}
	row("Events", fmt.Sprintf("%d", m.events))

	if m.last != nil {
		row("Compares", fmt.Sprintf("%d", m.last.Stats.Comparisons))
		row("Passes", fmt.Sprintf("%d", m.last.Stats.Passes))
		row("Elapsed", m.last.Elapsed.Round(time.Millisecond).String())
	}

	if len(m.disorder) > 1 {
		chart := asciigraph.Plot(m.disorder, asciigraph.Height(4), asciigraph.Width(panelWidth-12), asciigraph.Caption("Inversions"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if n := len(m.disorder); n > 0 {
		total := len(m.data) * (len(m.data) - 1) / 2
		progress := 1.0
		if total > 0 {
			progress = 1 - m.disorder[n-1]/float64(total)
		}
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Bar).Render(ProgressBar(progress, panelWidth-8)))
	}
	return s.String()
}

func (m App) footer() string {
	if m.running {
		return keyHints("x", "cancel", "+/-", "speed", "t", "theme", "?", "help", "q", "quit")
	}
	return keyHints("g", "generate", "enter", "start", "←/→", "algorithm", "+/-", "speed", "t", "theme", "?", "help", "q", "quit")
}

func (m App) helpView() string {
	var s strings.Builder
	s.WriteString(m.theme.titleStyle().Render("KEYBOARD SHORTCUTS") + "\n\n")
	bindings := []struct{ key, desc string }{
		{"g", "Generate a new random array"},
		{"enter / s", "Start the selected algorithm"},
		{"x / esc", "Cancel the running sort"},
		{"← / h", "Previous algorithm"},
		{"→ / l", "Next algorithm"},
		{"+", "Shorter step delay"},
		{"-", "Longer step delay"},
		{"t", "Cycle color theme (" + m.theme.Name + ")"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}
	for _, b := range bindings {
		s.WriteString(keyStyle.Width(12).Render(b.key) + m.theme.valueStyle().Render(b.desc) + "\n")
	}
	s.WriteString("\n" + menuOther.Render(strings.Join(ThemeNames(), " · ")))
	return lipgloss.NewStyle().Padding(2, 4).Render(s.String())
}
