package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lost-n-found/internal/config"
	"github.com/vovakirdan/lost-n-found/internal/core"
	"github.com/vovakirdan/lost-n-found/internal/game"
	"github.com/vovakirdan/lost-n-found/internal/logging"
	"github.com/vovakirdan/lost-n-found/internal/storage"
)

// Options configures a play session.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	StartLevel int
	Store      *storage.Store // may be nil
	Logger     *log.Logger    // may be nil
	Clock      core.Clock     // defaults to the system clock
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	opts   Options
	rng    *rand.Rand
	run    *game.Run
	layout Layout
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	glyphs Glyphs
	logger *log.Logger

	pointer   core.PointerSample
	hoverX    int
	hoverY    int
	bestLevel int
	lastState game.StateType
	runSaved  bool
	quitting  bool
}

// NewModel creates a new Bubble Tea model and starts the first run.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = opts.Config.Display.TickRate
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Runtime.Seed)),
		screen: core.NewScreen(opts.Runtime.ScreenW, boardRows(opts.Runtime.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		glyphs: SelectGlyphs(opts.Config.Display.Glyphs),
		logger: logger,
		hoverX: -1,
		hoverY: -1,
	}
	m.refreshBest()
	m.startRun()
	return m
}

func (m *Model) startRun() {
	m.run = game.NewRun(game.RunOptions{
		StartLevel: m.opts.StartLevel,
		Curve:      m.opts.Config.Difficulty,
		Timing:     m.opts.Config.Timing,
		Rand:       m.rng,
		Clock:      m.opts.Clock,
	})
	m.runSaved = false
	m.lastState = game.StatePlaying
	m.keys.Restart.SetEnabled(false)
	m.relayout()
	m.logRoundStart()
}

func (m *Model) relayout() {
	g := m.run.Round().Grid()
	m.layout = ComputeLayout(m.screen.Width(), m.screen.Height(), g.Width(), g.Height())
	if m.layout.TooSmall {
		m.logger.Warn("terminal too small for board",
			"screen", fmt.Sprintf("%dx%d", m.screen.Width(), m.screen.Height()),
			"grid", fmt.Sprintf("%dx%d", g.Width(), g.Height()),
		)
	}
}

func (m *Model) refreshBest() {
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.BestLevel()
	if err != nil {
		m.logger.Warn("could not read best level", "error", err)
		return
	}
	m.bestLevel = best
}

func (m *Model) logRoundStart() {
	r := m.run.Round()
	m.logger.Info("round started",
		"game_level", r.Level(),
		"round", m.run.RoundNumber(),
		"grid", fmt.Sprintf("%dx%d", r.Grid().Width(), r.Grid().Height()),
		"capacity", r.Grid().Capacity(),
		"time", r.TimeLeft(),
	)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, boardRows(msg.Height))
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Restart):
		m.startRun()
	}
	return m, nil
}

// handleMouse records the pointer position and left-button presses.
// Presses are consumed on the next tick.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.pointer.X = msg.X
	m.pointer.Y = msg.Y
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.pointer.Clicked = true
	}

	g := m.run.Round().Grid()
	if x, y, ok := core.SurfaceToGridCell(msg.X, msg.Y, m.layout.Left, m.layout.Top, g.Width(), g.Height()); ok {
		m.hoverX, m.hoverY = x, y
	} else {
		m.hoverX, m.hoverY = -1, -1
	}
	return m, nil
}

// handleTick runs one game tick with at most one click.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	g := m.run.Round().Grid()
	click := m.layout.HitTest(m.pointer.Consume(), g.Width(), g.Height())

	if m.run.Step(click) {
		m.relayout()
		m.logRoundStart()
	}

	snap := m.run.Snapshot()
	if snap.State != m.lastState {
		m.logTransition(snap)
		m.lastState = snap.State
	}

	if m.run.Over() && !m.runSaved {
		m.saveRun()
		m.runSaved = true
		m.keys.Restart.SetEnabled(true)
	}

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m *Model) logTransition(snap game.Snapshot) {
	switch snap.State {
	case game.StateWon:
		m.logger.Info("round won", "game_level", snap.Level, "time_left", snap.TimeLeft)
	case game.StateLost:
		m.logger.Info("round lost", "game_level", snap.Level)
	case game.StateFinished:
		sum := m.run.Summary()
		m.logger.Info("run finished",
			"start_level", sum.StartLevel,
			"level_reached", sum.LevelReached,
			"rounds_won", sum.RoundsWon,
			"duration", sum.Duration.Round(time.Millisecond),
		)
	}
}

// saveRun records the finished run. Storage errors are logged only.
func (m *Model) saveRun() {
	if m.opts.Store == nil {
		return
	}
	rec := storage.NewRunRecord(m.run.Summary(), time.Now())
	if err := m.opts.Store.SaveRun(rec); err != nil {
		m.logger.Error("could not save run", "error", err)
		return
	}
	m.refreshBest()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".lostnfound", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("level%d_%s.txt", m.run.Level(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current snapshot into the screen buffer.
func (m *Model) draw() {
	m.screen.Clear()
	snap := m.run.Snapshot()

	DrawHUD(m.screen, snap, m.bestLevel)

	if m.layout.TooSmall {
		bw, bh := core.BoardSize(snap.Width, snap.Height)
		m.screen.DrawTextCentered(m.screen.Height()/2,
			fmt.Sprintf("Enlarge the terminal to at least %dx%d", bw, bh+hudRows+footerRows+1), core.ColorYellow)
	} else {
		DrawBoard(m.screen, snap, m.layout, m.glyphs, m.hoverX, m.hoverY)
	}

	if text, color := Banner(snap); text != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, text, color)
	}
}

// boardRows is the screen height left once the help line is reserved.
func boardRows(termH int) int {
	return core.Max(1, termH-1)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n " + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a play session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a pressed button
	)

	_, err := p.Run()
	return err
}
