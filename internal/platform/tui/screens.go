package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockfield/arcade/internal/about"
	"github.com/blockfield/arcade/internal/config"
	"github.com/blockfield/arcade/internal/guess"
	"github.com/blockfield/arcade/internal/sorting"
	"github.com/blockfield/arcade/internal/storage"
)

// runScreen runs model full-screen and returns its final state.
func runScreen[M tea.Model](model M) (M, error) {
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return model, err
	}
	if m, ok := final.(M); ok {
		return m, nil
	}
	return model, nil
}

type guessStage int

const (
	stageA guessStage = iota
	stageB
	stageGuess
	stageDone
)

// GuessModel plays the guessing game: read A and B, then take guesses
// until the answer is hit or the attempts run out.
type GuessModel struct {
	cfg      config.GuessConfig
	store    *storage.Store
	input    textinput.Model
	stage    guessStage
	a        float64
	session  *guess.Session
	feedback []string
	invalid  bool
	width    int
	quitting bool
	back     bool
}

// NewGuessModel creates the guessing game screen.
func NewGuessModel(cfg config.GuessConfig, store *storage.Store, width int) GuessModel {
	ti := textinput.New()
	ti.Placeholder = "number"
	ti.CharLimit = 32
	ti.Width = 20
	ti.Focus()

	return GuessModel{cfg: cfg, store: store, input: ti, width: width}
}

// Init starts the cursor blinking.
func (m GuessModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the guessing game.
func (m GuessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.back = true
			return m, tea.Quit
		}

		if m.stage == stageDone {
			switch msg.String() {
			case "r":
				return NewGuessModel(m.cfg, m.store, m.width), textinput.Blink
			case "enter", "b", "q":
				m.back = true
				return m, tea.Quit
			}
			return m, nil
		}

		if msg.Type == tea.KeyEnter {
			return m.submit(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m GuessModel) submit() GuessModel {
	v, err := guess.ParseNumber(m.input.Value())
	if err != nil {
		m.invalid = true
		return m
	}
	m.invalid = false
	m.input.Reset()

	switch m.stage {
	case stageA:
		m.a = v
		m.stage = stageB
	case stageB:
		m.session = guess.NewSession(guess.Answer(m.a, v), m.cfg.Attempts, m.cfg.Tolerance)
		m.stage = stageGuess
	case stageGuess:
		out := m.session.Guess(v)
		if out.Correct {
			m.feedback = append(m.feedback, goodStyle.Render(fmt.Sprintf("%v: correct!", v)))
		} else {
			m.feedback = append(m.feedback, fmt.Sprintf("%v: wrong, attempts left: %d", v, out.Remaining))
		}
		if out.Over {
			m.finish()
		}
	}
	return m
}

func (m *GuessModel) finish() {
	m.stage = stageDone
	m.input.Blur()
	logger.Info("guess round finished", "won", m.session.Won(), "attempts", m.session.Used())
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveGuess(storage.GuessEntry{Correct: m.session.Won(), Attempts: m.session.Used()}); err != nil {
		logger.Warn("cannot record guess round", "err", err)
	}
}

func (m GuessModel) prompt() string {
	switch m.stage {
	case stageA:
		return "Enter number A:"
	case stageB:
		return "Enter number B:"
	default:
		return "Enter your answer:"
	}
}

// View renders the guessing game.
func (m GuessModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("GUESS THE RESULT"))
	b.WriteString("\n\n")
	b.WriteString("Result = 5π·ln(B) / (sin(A) + 1)\n\n")

	if m.session != nil {
		fmt.Fprintf(&b, "You have %d attempts.\n", m.session.Attempts())
		for _, line := range m.feedback {
			b.WriteString("  " + line + "\n")
		}
		b.WriteString("\n")
	}

	if m.stage == stageDone {
		if m.session.Won() {
			b.WriteString(goodStyle.Render(fmt.Sprintf("Congratulations! The answer is %v", m.session.Answer())))
		} else {
			b.WriteString(errorStyle.Render(fmt.Sprintf("You lost! The correct answer: %v", m.session.Answer())))
		}
		b.WriteString("\n\n")
		if m.store != nil {
			if played, won, err := m.store.GuessRecord(); err == nil {
				fmt.Fprintf(&b, "Rounds won this session: %d of %d\n\n", won, played)
			}
		}
		b.WriteString(hintStyle.Render("R: play again  |  Enter/Esc: back"))
		return centerBlock(b.String(), m.width)
	}

	b.WriteString(m.prompt() + "\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.invalid {
		b.WriteString(errorStyle.Render("Enter a number"))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Enter: submit  |  Esc: back"))
	return centerBlock(b.String(), m.width)
}

// WantsBack reports whether the screen was left with Esc or Enter.
func (m GuessModel) WantsBack() bool {
	return m.back
}

// RunGuess runs the guessing game screen. It returns false if the user
// quit the program.
func RunGuess(cfg config.GuessConfig, store *storage.Store, width int) (bool, error) {
	m, err := runScreen(NewGuessModel(cfg, store, width))
	return m.WantsBack(), err
}

// SortModel runs the sorting comparison and shows the session history.
type SortModel struct {
	cfg      config.SortConfig
	rng      *rand.Rand
	store    *storage.Store
	report   sorting.Report
	history  table.Model
	width    int
	quitting bool
	back     bool
}

// NewSortModel creates the sorting screen and runs the first comparison.
func NewSortModel(cfg config.SortConfig, store *storage.Store, seed int64, width int) SortModel {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	m := SortModel{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		store: store,
		width: width,
		history: table.New(
			table.WithColumns([]table.Column{
				{Title: "Time", Width: 10},
				{Title: "Length", Width: 7},
				{Title: "Bubble", Width: 12},
				{Title: "Insertion", Width: 12},
				{Title: "Faster", Width: 10},
			}),
			table.WithHeight(6),
		),
	}
	m.run()
	return m
}

func (m *SortModel) run() {
	data := sorting.RandomArray(m.rng, m.cfg.Length, m.cfg.Min, m.cfg.Max)
	m.report = sorting.Compare(data)
	logger.Info("sort benchmark", "length", len(data), "faster", m.report.Faster)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveBenchmark(storage.BenchmarkEntry{
		Length:    len(data),
		Bubble:    m.report.Bubble.Elapsed,
		Insertion: m.report.Insertion.Elapsed,
		Winner:    string(m.report.Faster),
	})
	if err != nil {
		logger.Warn("cannot record benchmark", "err", err)
	}

	runs, err := m.store.RecentBenchmarks(6)
	if err != nil {
		logger.Warn("cannot load benchmarks", "err", err)
		return
	}
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("15:04:05"),
			fmt.Sprintf("%d", r.Length),
			r.Bubble.String(),
			r.Insertion.String(),
			r.Winner,
		}
	}
	m.history.SetRows(rows)
}

// Init does nothing; the first comparison runs on construction.
func (m SortModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sorting screen.
func (m SortModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "esc", "b", "enter":
			m.back = true
			return m, tea.Quit
		case "r", " ":
			m.run()
		}
	}
	return m, nil
}

// View renders the latest report and the history table.
func (m SortModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("ARRAY SORTING"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Source array:\n%s\n\n", sorting.FormatArray(m.report.Input))
	for _, res := range []sorting.Result{m.report.Bubble, m.report.Insertion} {
		fmt.Fprintf(&b, "%s: %s\n", res.Algorithm.Title(), res.Elapsed)
		fmt.Fprintf(&b, "  %s\n", sorting.FormatArray(res.Sorted))
	}
	b.WriteString("\n")
	b.WriteString(goodStyle.Render(m.report.Faster.Title() + " is faster."))
	b.WriteString("\n\n")

	if len(m.history.Rows()) > 0 {
		b.WriteString("This session\n")
		b.WriteString(panelStyle.Render(m.history.View()))
		b.WriteString("\n\n")
	}
	b.WriteString(hintStyle.Render("R: run again  |  Esc: back  |  Q: quit"))
	return centerBlock(b.String(), m.width)
}

// WantsBack reports whether the screen was left with Esc.
func (m SortModel) WantsBack() bool {
	return m.back
}

// RunSort runs the sorting screen. It returns false if the user quit the
// program.
func RunSort(cfg config.SortConfig, store *storage.Store, seed int64, width int) (bool, error) {
	m, err := runScreen(NewSortModel(cfg, store, seed, width))
	return m.WantsBack(), err
}

// AboutModel shows the author information.
type AboutModel struct {
	width    int
	quitting bool
}

// NewAboutModel creates the about screen.
func NewAboutModel(width int) AboutModel {
	return AboutModel{width: width}
}

// Init does nothing.
func (m AboutModel) Init() tea.Cmd {
	return nil
}

// Update leaves the screen on any key.
func (m AboutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
		}
		return m, tea.Quit
	}
	return m, nil
}

// View renders the author panel.
func (m AboutModel) View() string {
	body := titleStyle.Render(about.Title) + "\n\n" + strings.Join(about.Lines(), "\n")
	return "\n" + centerBlock(panelStyle.Padding(1, 3).Render(body), m.width) + "\n\n" +
		centerText(hintStyle.Render("Press any key to go back"), m.width)
}

// RunAbout shows the about screen. It returns false if the user quit the
// program.
func RunAbout(width int) (bool, error) {
	m, err := runScreen(NewAboutModel(width))
	return !m.quitting, err
}
