package ui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/The-Focus-AI/asciiwebcam/internal/ascii"
	"github.com/The-Focus-AI/asciiwebcam/internal/camera"
	"github.com/The-Focus-AI/asciiwebcam/internal/pipeline"
	"github.com/The-Focus-AI/asciiwebcam/internal/term"
)

// Config wires the app model to its collaborators.
type Config struct {
	Camera      camera.Source
	Terminal    *term.Terminal
	Scheduler   *pipeline.Scheduler
	Palette     string
	Scheme      string
	CellAspect  float64
	HideStatus  bool
	SourceLabel string
	Log         *slog.Logger
}

// frameTickMsg drives one render cycle.
type frameTickMsg time.Time

// restarter is implemented by camera sources that can be manually kicked
// back to life, like camera.Reconnecting.
type restarter interface {
	Restart()
}

// App is the Bubbletea model for the live view. It runs with the renderer
// disabled: Bubbletea supplies input, resize and lifecycle events, while the
// model writes frames to the terminal itself through the differential
// renderer.
type App struct {
	cam   camera.Source
	pipe  *pipeline.Pipeline
	sched *pipeline.Scheduler
	term  *term.Terminal
	rend  *term.Renderer
	keys  KeyMap
	log   *slog.Logger

	palette *ascii.Palette
	scheme  *ascii.Scheme

	cellAspect  float64
	hideStatus  bool
	showHelp    bool
	sourceLabel string
}

// NewApp creates the live-view model.
func NewApp(cfg Config) (*App, error) {
	palette, err := ascii.LookupPalette(cfg.Palette)
	if err != nil {
		return nil, err
	}
	scheme, err := ascii.LookupScheme(cfg.Scheme)
	if err != nil {
		return nil, err
	}
	return &App{
		cam:         cfg.Camera,
		pipe:        pipeline.New(cfg.Log),
		sched:       cfg.Scheduler,
		term:        cfg.Terminal,
		rend:        term.NewRenderer(),
		keys:        DefaultKeyMap(),
		log:         cfg.Log,
		palette:     palette,
		scheme:      scheme,
		cellAspect:  cfg.CellAspect,
		hideStatus:  cfg.HideStatus,
		sourceLabel: cfg.SourceLabel,
	}, nil
}

// Init schedules the first render cycle.
func (m *App) Init() tea.Cmd {
	return tickCmd(time.Millisecond)
}

// Update handles messages.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Geometry is re-queried every cycle; a resize only needs to force
		// the next paint to cover the whole grid.
		m.rend.Invalidate()
		m.term.Clear()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameTickMsg:
		accepted := m.cycle(time.Time(msg))
		return m, tickCmd(m.nextDelay(accepted, time.Now()))
	}

	return m, nil
}

// View renders nothing: the model draws directly to the terminal.
func (m *App) View() string { return "" }

func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	// Any other key dismisses the help overlay.
	if m.showHelp {
		m.showHelp = false
		m.repaint()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextPalette):
		m.palette = nextPalette(m.palette)
		m.log.Info("palette changed", "palette", m.palette.Name())

	case key.Matches(msg, m.keys.NextScheme):
		m.scheme = nextScheme(m.scheme)
		m.log.Info("scheme changed", "scheme", m.scheme.Name())

	case key.Matches(msg, m.keys.FastMode):
		m.sched.SetMode(pipeline.ModeFast, time.Now())

	case key.Matches(msg, m.keys.SlowMode):
		m.sched.SetMode(pipeline.ModeSlow, time.Now())

	case key.Matches(msg, m.keys.ToggleBar):
		m.hideStatus = !m.hideStatus
		m.repaint()

	case key.Matches(msg, m.keys.Repaint):
		// Also kick a dead camera: an explicit retry should not wait out
		// the reconnect backoff.
		if r, ok := m.cam.(restarter); ok && !m.cam.Available() {
			r.Restart()
		}
		m.repaint()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}

	return m, nil
}

// repaint clears the screen and forces the next cycle to redraw every cell.
func (m *App) repaint() {
	m.rend.Invalidate()
	m.term.Clear()
}

// cycle runs one render pass: query geometry, pull the latest frame, convert
// it, and apply the differential update. Failures hold the last good grid on
// screen. Reports whether a frame was accepted this pass.
func (m *App) cycle(now time.Time) bool {
	start := time.Now()

	geom, err := m.term.Geometry(m.cellAspect)
	if err != nil {
		m.log.Error("terminal size query failed", "error", err)
		return false
	}

	if m.showHelp {
		m.drawHelp(geom)
		return false
	}

	videoGeom := geom
	if !m.hideStatus {
		videoGeom.Rows-- // bottom row is the status bar
	}

	accepted := false
	grid := m.pipe.LastGrid()
	if frame := m.cam.NextFrame(); frame == nil {
		m.sched.Skip()
	} else {
		g, err := m.pipe.Process(frame, videoGeom, pipeline.Style{
			Palette: m.palette,
			Scheme:  m.scheme,
		})
		if err != nil {
			m.log.Warn("frame conversion failed", "error", err,
				"cols", videoGeom.Cols, "rows", videoGeom.Rows)
			m.sched.Skip()
		} else {
			grid = g
			accepted = true
			m.sched.Accept(now)
		}
	}

	if grid != nil {
		if err := m.term.Apply(m.rend.Render(grid)); err != nil {
			m.log.Error("terminal write failed", "error", err)
			return accepted
		}
	}

	if !m.hideStatus {
		m.term.WriteLine(geom.Rows-1, m.statusLine(geom.Cols))
	}

	m.sched.Observe(time.Since(start))
	return accepted
}

// nextDelay picks the wait before the next cycle. After an accepted frame
// the scheduler answers with the remaining budget. When the cycle accepted
// nothing — idle camera, conversion failure, help overlay up — the budget
// stays elapsed and the remainder would be zero, so wait a full interval
// instead of re-polling at spin speed.
func (m *App) nextDelay(accepted bool, now time.Time) time.Duration {
	if accepted {
		return m.sched.Delay(now)
	}
	return m.sched.Interval()
}

func tickCmd(d time.Duration) tea.Cmd {
	if d <= 0 {
		d = time.Millisecond
	}
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// nextPalette returns the preset after the current one in name order,
// wrapping at the end.
func nextPalette(cur *ascii.Palette) *ascii.Palette {
	names := ascii.PaletteNames()
	next, _ := ascii.LookupPalette(names[nextIndex(names, cur.Name())])
	return next
}

func nextScheme(cur *ascii.Scheme) *ascii.Scheme {
	names := ascii.SchemeNames()
	next, _ := ascii.LookupScheme(names[nextIndex(names, cur.Name())])
	return next
}

func nextIndex(names []string, cur string) int {
	for i, n := range names {
		if n == cur {
			return (i + 1) % len(names)
		}
	}
	return 0
}

// sourceStatus describes the camera for the status bar.
func (m *App) sourceStatus() string {
	if m.cam.Available() {
		return m.sourceLabel
	}
	return fmt.Sprintf("%s (waiting)", m.sourceLabel)
}
