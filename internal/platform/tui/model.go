package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/replay"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// GameOptions configures a GameModel. The zero value plays without a score
// log, recording or logging.
type GameOptions struct {
	Store      *storage.Store
	Difficulty string
	Player     string // Stored with each score; empty for local play
	HighScore  int    // Seeds the game's high score after Reset
	HoldTicks  int    // Ticks a direction stays down without a repeat
	Recorder   *replay.Recorder
	Logger     *log.Logger
	Renderer   *ScreenRenderer
}

// GameModel is the Bubble Tea model for one game: it turns key presses and
// mouse clicks into input frames, steps the game on each tick and keeps the score log.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       GameOptions
	keyMapper  *KeyMapper
	held       *heldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	ticks      uint64
	pointerOn  bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = defaultScreenRenderer
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		held:       newHeldKeys(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.opts.HighScore > 0 {
		registry.SeedHighScore(m.game, m.opts.HighScore)
	}
	m.opts.Logger.Debug("game ready",
		"game", m.game.ID(),
		"difficulty", m.opts.Difficulty,
		"cols", m.config.ScreenW,
		"rows", m.config.ScreenH,
		"fps", m.config.TickRate,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Press(msg.X, msg.Y)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.inputFrame.Quit()
		if m.opts.Recorder != nil {
			m.opts.Recorder.Record(m.inputFrame)
		}
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionBack:
		// Leaving mid-session would drop the score; back only works between sessions
		if m.gameState.GameOver {
			m.backToMenu = true
			return m, tea.Quit
		}
	default:
		m.held.Press(action, &m.inputFrame)
	}

	return m, nil
}

// handleResize resizes the screen buffer and tells the game, which keeps its state.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	registry.Resize(m.game, msg.Width, msg.Height)
	if m.opts.Recorder != nil {
		m.opts.Recorder.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.held.Tick(&m.inputFrame)
	if m.opts.Recorder != nil {
		m.opts.Recorder.Record(m.inputFrame)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++
	m.handleEvents(result)

	// Clear input for next frame
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if visible := registry.PointerVisible(m.game); visible != m.pointerOn {
		m.pointerOn = visible
		if visible {
			cmds = append(cmds, tea.EnableMouseCellMotion)
		} else {
			cmds = append(cmds, tea.DisableMouse)
		}
	}
	return m, tea.Batch(cmds...)
}

// handleEvents logs game events and saves the score once per finished session.
func (m *GameModel) handleEvents(result core.StepResult) {
	for _, ev := range result.Events {
		m.opts.Logger.Debug("game event",
			"event", ev.Type,
			"value", ev.Value,
			"tick", m.ticks,
		)
		if ev.Type == core.GameEventGameOver {
			m.saveScore(result.State)
		}
	}
}

// saveScore records a finished session in the score log.
func (m *GameModel) saveScore(state core.GameState) {
	if m.opts.Store == nil || state.Score <= 0 {
		return
	}
	id, err := m.opts.Store.SaveScore(storage.ScoreEntry{
		GameID:     m.game.ID(),
		Difficulty: m.opts.Difficulty,
		Player:     m.opts.Player,
		Score:      state.Score,
		Level:      state.Level,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
		return
	}
	m.opts.Logger.Info("score saved", "id", id, "score", state.Score, "level", state.Level)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)
	return m.opts.Renderer.Render(m.screen)
}

// State returns the last stepped game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameResult is how a standalone game program ended.
type GameResult struct {
	State      core.GameState
	BackToMenu bool
}

// RunGame runs game in its own Bubble Tea program until the player quits or goes back.
func RunGame(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (GameResult, error) {
	model := NewGameModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return GameResult{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameResult{}, nil
	}
	return GameResult{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
