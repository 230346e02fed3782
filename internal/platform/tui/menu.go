package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// menuItems are the title menu entries in display order.
var menuItems = []struct {
	Choice MenuChoice
	Label  string
}{
	{MenuPlay, "Play"},
	{MenuScores, "High Scores"},
	{MenuQuit, "Quit"},
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	title      string
	cursor     int
	difficulty int // Index into config.Presets()
	highScore  int
	width      int
	height     int
	keyMapper  *KeyMapper
	choice     MenuChoice
}

// NewMenuModel creates a new menu model with difficulty preselected.
// Unknown difficulties select normal.
func NewMenuModel(title, difficulty string, highScore, width, height int) MenuModel {
	m := MenuModel{
		title:     title,
		highScore: highScore,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		preset = config.DifficultyNormal
	}
	for i, p := range config.Presets() {
		if p == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := config.Presets()

	switch msg.String() {
	case "left", "h":
		m.difficulty = (m.difficulty + len(presets) - 1) % len(presets)
		return m, nil
	case "right", "l":
		m.difficulty = (m.difficulty + 1) % len(presets)
		return m, nil
	case "tab":
		m.choice = MenuScores
		return m, tea.Quit
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = menuItems[m.cursor].Choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.title), m.width))
	b.WriteString("\n\n")
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %s", formatScore(m.highScore)), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.Label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Difficulty()), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuHintStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, or MenuNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Difficulty returns the selected preset name.
func (m MenuModel) Difficulty() string {
	return string(config.Presets()[m.difficulty])
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (width, height int) {
	return m.width, m.height
}

// centerText centers text within given width.
// Width is measured in cells, so styled text is centered by what shows.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice     MenuChoice
	Difficulty string
	Width      int
	Height     int
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(title, difficulty string, highScore, width, height int) (MenuResult, error) {
	model := NewMenuModel(title, difficulty, highScore, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuNone {
		return MenuResult{Choice: MenuQuit, Width: width, Height: height}, nil
	}

	w, h := m.Size()
	return MenuResult{
		Choice:     m.Choice(),
		Difficulty: m.Difficulty(),
		Width:      w,
		Height:     h,
	}, nil
}
