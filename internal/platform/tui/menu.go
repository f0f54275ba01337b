package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockfield/arcade/internal/about"
	"github.com/blockfield/arcade/internal/core"
	"github.com/blockfield/arcade/internal/registry"
)

// ItemKind says what a menu entry opens.
type ItemKind int

const (
	ItemGame ItemKind = iota
	ItemGuess
	ItemSort
	ItemScores
	ItemAbout
)

// MenuItem is one selectable menu entry.
type MenuItem struct {
	Kind        ItemKind
	GameID      string // Set for ItemGame
	Title       string
	Description string
}

// menuItems lists the registered games followed by the fixed programs.
func menuItems() []MenuItem {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+4)
	for _, g := range games {
		items = append(items, MenuItem{Kind: ItemGame, GameID: g.ID, Title: g.Title, Description: g.Description})
	}
	return append(items,
		MenuItem{Kind: ItemGuess, Title: "Guess the result", Description: "Three tries to guess a formula's value"},
		MenuItem{Kind: ItemSort, Title: "Array sorting", Description: "Bubble sort against insertion sort"},
		MenuItem{Kind: ItemScores, Title: "High scores", Description: "This session's best rounds"},
		MenuItem{Kind: ItemAbout, Title: about.Title, Description: "Who made this"},
	)
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     menuItems(),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits pick an entry directly, like the console menu.
	if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		if i := int(k[0] - '1'); i < len(m.items) {
			m.cursor = i
			return m.choose()
		}
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.choose()

	case MenuActionScoreboard:
		for i, item := range m.items {
			if item.Kind == ItemScores {
				m.cursor = i
				return m.choose()
			}
		}
	}
	return m, nil
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	selected := m.items[m.cursor]
	m.selected = &selected
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  A R C A D E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose a menu item", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%d. %-18s", cursor, i+1, item.Title), m.width))
		b.WriteString("\n")
	}

	if m.cursor < len(m.items) {
		b.WriteString("\n")
		b.WriteString(centerText(hintStyle.Render(m.items[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen entry, or nil if none was chosen.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, updated by resizes.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Item   MenuItem
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu shows the menu and returns the selection.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	finalModel, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	if m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Config: m.Config(), Quit: true}, nil
	}
	return MenuResult{Item: *m.Selected(), Config: m.Config()}, nil
}
