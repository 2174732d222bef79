package bar

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/statbar/statbar/internal/config"
	"github.com/statbar/statbar/internal/graph"
	"github.com/statbar/statbar/internal/logger"
	"github.com/statbar/statbar/internal/stats"
)

// graphWindowGap is the vertical offset between the bar and a launched graph
// window, in pixels.
const graphWindowGap = 30

// Model is the Bubble Tea model for the status bar.
//
// One tick drives everything: the source refreshes once, then every widget
// cell samples in order. Cells are never sampled concurrently, so a frame
// always shows a consistent view of one snapshot.
type Model struct {
	widgets  []*Widget
	source   *Source
	launcher *graph.Launcher
	renderer config.RendererConfig

	// memGauge is the horizontal memory bar under the widget row.
	memGauge progress.Model

	selected int
	width    int
	height   int
	interval time.Duration
	lastData time.Time
	quitting bool
	showHelp bool
	log      logger.Logger
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// NewModel creates the status bar model from config. The collector history
// is used to seed sparklines when the collector is reachable.
func NewModel(cfg *config.Config, log logger.Logger) Model {
	if log == nil {
		log = logger.Default()
	}

	reader := stats.NewReader(cfg.Stats.Dir, log)
	source := NewSource(reader, cfg.Stats.History)
	if source.Seed() {
		log.Debug("seeded sparklines from collector history")
	}

	interval := cfg.Bar.Interval
	if interval <= 0 {
		interval = time.Second
	}

	gauge := progress.New(
		progress.WithGradient(string(ColorMemory), string(ColorNetUp)),
		progress.WithoutPercentage(),
	)
	gauge.Width = 30

	m := Model{
		widgets:  Widgets(source, cfg.Bar.ClockFormat, log),
		memGauge: gauge,
		source:   source,
		launcher: graph.NewLauncher(cfg.Renderer.Bin, cfg.Renderer.Dir, log),
		renderer: cfg.Renderer,
		interval: interval,
		log:      log,
	}

	// First refresh happens here so the bar doesn't sit empty for one
	// interval after startup.
	m.refresh()
	if _, ok := source.Last(); ok {
		m.lastData = time.Now()
	}

	return m
}

// Init starts the tick timer.
func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		gaugeWidth := m.width / 4
		if gaugeWidth < 10 {
			gaugeWidth = 10
		}
		if gaugeWidth > 40 {
			gaugeWidth = 40
		}
		m.memGauge.Width = gaugeWidth

	case tickMsg:
		m.refresh()
		if _, ok := m.source.Last(); ok {
			m.lastData = time.Time(msg)
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderBar()
}

// refresh runs one poll cycle: read the shared snapshot once, then sample
// every widget cell in order.
func (m Model) refresh() {
	m.source.Refresh()
	for _, w := range m.widgets {
		w.Cell.Sample()
	}
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Stale reports whether the bar has gone multiple intervals without data.
func (m Model) Stale() bool {
	if m.lastData.IsZero() {
		return true
	}
	return time.Since(m.lastData) > 3*m.interval
}

// SelectedWidget returns the currently selected widget.
func (m Model) SelectedWidget() *Widget {
	if m.selected >= 0 && m.selected < len(m.widgets) {
		return m.widgets[m.selected]
	}
	return nil
}

// launchGraph spawns a graph window for the selected widget. Widgets without
// a graph (the clock) ignore the key.
func (m Model) launchGraph() {
	w := m.SelectedWidget()
	if w == nil || w.Graph == nil {
		return
	}

	req, ok := w.Graph()
	if !ok {
		return
	}

	if m.renderer.Width > 0 {
		req.Width = m.renderer.Width
	}
	if m.renderer.Height > 0 {
		req.Height = m.renderer.Height
	}
	// Place the window roughly under the selected widget.
	req.PositionX = m.selected * (req.Width + 10)
	req.PositionY = graphWindowGap

	m.launcher.Launch(req)
}

// stopAll freezes every widget cell so nothing samples after teardown.
func (m *Model) stopAll() {
	for _, w := range m.widgets {
		w.Cell.Stop()
	}
}
