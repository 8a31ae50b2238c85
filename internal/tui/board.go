package tui

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/habitkit/internal/habit"
	"github.com/rnwolfe/habitkit/internal/ui"
)

// BoardAction represents an action taken on the habit board.
type BoardAction struct {
	Type string // "toggle"
	ID   string
	Key  string
}

type boardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Toggle key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Filter, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Toggle, k.Filter, k.Quit},
	}
}

var boardKeys = boardKeyMap{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
	Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Toggle: key.NewBinding(key.WithKeys("x", " ", "enter"), key.WithHelp("x", "toggle today")),
	Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

// BoardModel is a Bubbletea model listing habits with today's status and
// current streak. Toggles are applied locally and collected in Actions.
type BoardModel struct {
	habits    []habit.Habit
	filtered  []habit.Habit
	cursor    int
	filter    string
	filtering bool

	today     time.Time
	streakCap int

	keys boardKeyMap
	help help.Model

	width  int
	height int

	// pending actions to apply after quitting
	Actions []BoardAction

	quitting bool
}

// NewBoardModel creates a board for habits as of today. streakCap bounds
// streak counting; non-positive means the default cap.
func NewBoardModel(habits []habit.Habit, today time.Time, streakCap int) *BoardModel {
	local := make([]habit.Habit, len(habits))
	for i, h := range habits {
		local[i] = h
		local[i].Completions = maps.Clone(h.Completions)
		if local[i].Completions == nil {
			local[i].Completions = habit.Completions{}
		}
	}
	m := &BoardModel{
		habits:    local,
		today:     today,
		streakCap: streakCap,
		keys:      boardKeys,
		help:      help.New(),
		width:     80,
		height:    24,
	}
	m.applyFilter()
	return m
}

// RunBoard launches the interactive board. Returns actions for the caller to apply.
func RunBoard(habits []habit.Habit, today time.Time, streakCap int) ([]BoardAction, error) {
	m := NewBoardModel(habits, today, streakCap)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	result, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("board tui: %w", err)
	}
	final := result.(*BoardModel)
	return final.Actions, nil
}

func (m *BoardModel) Init() tea.Cmd {
	return nil
}

func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

func (m *BoardModel) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.Bottom):
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleSelected()

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter = ""
		m.applyFilter()
		m.cursor = 0
	}
	return m, nil
}

func (m *BoardModel) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.applyFilter()
		m.cursor = 0

	case tea.KeyEnter:
		m.filtering = false

	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
			m.cursor = 0
		}

	case tea.KeySpace:
		m.filter += " "
		m.applyFilter()
		m.cursor = 0

	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.applyFilter()
		m.cursor = 0
	}
	return m, nil
}

func (m *BoardModel) toggleSelected() {
	if len(m.filtered) == 0 {
		return
	}
	id := m.filtered[m.cursor].ID
	todayKey := habit.DateKey(m.today)
	m.Actions = append(m.Actions, BoardAction{Type: "toggle", ID: id, Key: todayKey})

	// Toggle locally for immediate feedback
	for i := range m.habits {
		if m.habits[i].ID == id {
			m.habits[i].Completions[todayKey] = !m.habits[i].Completions.Done(todayKey)
			break
		}
	}
	m.applyFilter()
}

func (m *BoardModel) applyFilter() {
	m.filtered = habit.FuzzyFilter(m.habits, strings.TrimSpace(m.filter))
	if m.cursor >= len(m.filtered) && m.cursor > 0 {
		m.cursor = len(m.filtered) - 1
	}
}

func (m *BoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := ui.Title.Render("  " + ui.IconHabit + " Habits")
	header += ui.Muted.Render("  " + m.today.Format("Mon Jan 2"))
	if m.filter != "" {
		header += ui.Muted.Render(fmt.Sprintf("  filter: %q", m.filter))
	}
	b.WriteString(header + "\n\n")

	visHeight := m.height - 8
	if visHeight < 3 {
		visHeight = 3
	}
	offset := 0
	if m.cursor >= visHeight {
		offset = m.cursor - visHeight + 1
	}

	if len(m.filtered) == 0 {
		if m.filter != "" {
			b.WriteString("  " + ui.Muted.Render("No matches. Press esc to clear filter.") + "\n")
		} else {
			b.WriteString("  " + ui.Muted.Render("No habits yet. Run `habitkit add` to create one.") + "\n")
		}
	} else {
		end := min(offset+visHeight, len(m.filtered))
		for i := offset; i < end; i++ {
			b.WriteString(m.renderHabit(m.filtered[i], i == m.cursor) + "\n")
		}
	}

	b.WriteString("\n")
	if m.filtering {
		prompt := lipgloss.NewStyle().Foreground(ui.Amber).Bold(true).Render("/")
		b.WriteString("  " + prompt + " " + m.filter + blinkCursor() + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString("\n")

	doneToday := 0
	for _, h := range m.habits {
		if h.DoneOn(m.today) {
			doneToday++
		}
	}
	b.WriteString(ui.Muted.Render(fmt.Sprintf("  %d/%d done today", doneToday, len(m.habits))) + "\n")

	if m.filtering {
		b.WriteString(ui.Muted.Render("  esc clear · enter confirm") + "\n")
	} else {
		b.WriteString("  " + m.help.View(m.keys) + "\n")
	}
	return b.String()
}

func (m *BoardModel) renderHabit(h habit.Habit, selected bool) string {
	pointer := "  "
	nameStyle := ui.HabitStyle(h.Color)
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		nameStyle = nameStyle.Bold(true)
	}

	marker := ui.Muted.Render("○")
	if h.DoneOn(m.today) {
		marker = ui.Success.Render("●")
	}

	line := fmt.Sprintf("  %s %s %s %s", pointer, marker, h.Icon, nameStyle.Render(h.Name))

	s := habit.Streak(h.Completions, m.today, m.streakCap)
	if s.Days > 0 {
		count := fmt.Sprintf("%d", s.Days)
		if s.Capped {
			count += "+"
		}
		line += ui.Warning.Render(fmt.Sprintf("  %s %s", ui.IconFire, count))
	}
	return line
}

func blinkCursor() string {
	return lipgloss.NewStyle().Foreground(ui.Amber).Render("▎")
}
