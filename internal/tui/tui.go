// Package tui is the terminal front end: a bubbletea model that feeds key
// presses to a game.Session and draws its snapshot.
package tui

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/game"
	"github.com/lox/twentyone/internal/odds"
	"github.com/lox/twentyone/internal/randutil"
	"github.com/lox/twentyone/internal/scoreboard"
)

// maxLogLines caps the event log kept in memory.
const maxLogLines = 200

const sidebarWidth = 34

// sampleKey identifies the population a sample was drawn from.
type sampleKey struct {
	N, K, n int
}

// sampleMsg delivers a finished empirical sample.
type sampleMsg struct {
	key    sampleKey
	sample odds.Sample
	err    error
}

// Model is the Bubble Tea model for the game.
type Model struct {
	session     *game.Session
	board       *scoreboard.Board
	logger      *log.Logger
	rng         *rand.Rand
	simulations int

	// UI components
	nameInput   textinput.Model
	logViewport viewport.Model
	help        help.Model
	keys        keyMap

	// State
	gameLog   []string
	nameErr   error
	sample    *odds.Sample
	sampleFor sampleKey
	pending   sampleKey
	quitting  bool

	// Dimensions
	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithSimulations sets the number of empirical draws behind the PMF chart.
func WithSimulations(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.simulations = n
		}
	}
}

// WithRand seeds the empirical sampler.
func WithRand(rng *rand.Rand) Option {
	return func(m *Model) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// New creates the model. Events published on bus are shown in the log pane;
// bus should be the one the session publishes to.
func New(session *game.Session, bus game.EventBus, board *scoreboard.Board, logger *log.Logger, opts ...Option) *Model {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = game.MaxNameLength
	ti.Width = game.MaxNameLength + 1
	ti.Prompt = "Name: "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.SetValue(session.Name())
	ti.Focus()

	m := &Model{
		session:     session,
		board:       board,
		logger:      logger.WithPrefix("tui"),
		simulations: odds.DefaultSimulations,
		nameInput:   ti,
		logViewport: viewport.New(sidebarWidth, 10),
		help:        help.New(),
		keys:        defaultKeyMap(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = randutil.Fresh()
	}

	bus.Subscribe(game.SubscriberFunc(m.onEvent))
	m.keys.sync(session.State())
	return m
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.refreshSample())
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case sampleMsg:
		if msg.err != nil {
			m.logger.Warn("Empirical sample failed", "error", msg.err)
			return m, nil
		}
		if msg.key == m.pending {
			m.sample = &msg.sample
			m.sampleFor = msg.key
		}
		return m, nil

	case tea.KeyMsg:
		if m.session.State() == game.AwaitingName {
			return m.updateName(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}

		switch {
		case key.Matches(msg, m.keys.Hit):
			m.apply(game.Hit)
		case key.Matches(msg, m.keys.Stand):
			m.apply(game.Stand)
		case key.Matches(msg, m.keys.NextRound):
			m.apply(game.NextRound)
		case key.Matches(msg, m.keys.Chart):
			m.apply(game.ToggleChart)
		case key.Matches(msg, m.keys.Trials):
			m.apply(game.CycleTrials)
		case key.Matches(msg, m.keys.NewSession):
			m.apply(game.NewSession)
			m.nameInput.SetValue(m.session.Name())
			m.nameInput.CursorEnd()
			return m, tea.Batch(m.nameInput.Focus(), m.refreshSample())
		}
		return m, m.refreshSample()
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// updateName handles keys while the name prompt has focus. q is typed into the
// name, so only ctrl+c and esc quit here.
func (m *Model) updateName(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	}

	if key.Matches(msg, m.keys.Start) {
		if err := m.session.SubmitName(m.nameInput.Value()); err != nil {
			m.nameErr = err
			return m, nil
		}
		m.nameErr = nil
		m.apply(game.Start)
		m.nameInput.Blur()
		return m, m.refreshSample()
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) apply(a game.Action) {
	if !m.session.Apply(a) {
		m.logger.Debug("Ignored input", "action", a, "state", m.session.State())
	}
	m.keys.sync(m.session.State())
}

// refreshSample starts a new empirical sample when the PMF chart is showing a
// population that has not been sampled yet.
func (m *Model) refreshSample() tea.Cmd {
	snap := m.session.Snapshot()
	if snap.State == game.AwaitingName || snap.Chart != game.ChartPMF {
		return nil
	}

	k := sampleKey{N: snap.Population.N, K: snap.Population.K, n: snap.CurveDraws}
	if (m.sample != nil && k == m.sampleFor) || k == m.pending {
		return nil
	}
	m.pending = k
	m.sample = nil

	// The command runs on another goroutine, so it gets its own generator.
	seed := m.rng.Int64()
	trials := m.simulations
	return func() tea.Msg {
		sample, err := odds.Simulate(context.Background(), k.N, k.K, k.n, trials, randutil.New(seed))
		return sampleMsg{key: k, sample: sample, err: err}
	}
}

func (m *Model) onEvent(event game.GameEvent) {
	line := game.FormatEvent(event)
	if line == "" {
		return
	}
	m.AddLogEntry(fmt.Sprintf("%s %s", event.Timestamp().Format("15:04:05"), line))
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)
	if len(m.gameLog) > maxLogLines {
		m.gameLog = m.gameLog[len(m.gameLog)-maxLogLines:]
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Log returns a copy of the event log.
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.session.Snapshot()
	header := m.renderHeader(snap)
	footer := m.renderFooter(snap)

	mainWidth := max(m.width-sidebarWidth-4, 20)
	var body string
	if snap.State == game.AwaitingName {
		body = m.renderWelcome()
	} else {
		table := activePaneStyle.Width(mainWidth).Render(m.renderTable(snap))
		chart := paneStyle.Width(mainWidth).Render(m.renderChart(snap))
		body = lipgloss.JoinVertical(lipgloss.Left, table, chart)
	}

	sidebar := m.renderSidebar(lipgloss.Height(body))
	main := lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(mainWidth+4).Render(body), sidebar)
	return lipgloss.JoinVertical(lipgloss.Left, header, main, footer)
}

func (m *Model) renderHeader(snap game.Snapshot) string {
	title := HeaderStyle.Render("TWENTY-ONE")
	if snap.State == game.AwaitingName {
		return title
	}

	round := snap.Round
	if snap.State == game.Playing {
		round++
	}
	info := fmt.Sprintf("  %s  Round %d/%d  Score %+d  Deck %d",
		snap.Name, round, snap.Rounds, snap.Score, snap.DeckRemaining)
	if snap.State == game.SessionEnd {
		info = fmt.Sprintf("  %s  Final score %+d  Deck %d", snap.Name, snap.Score, snap.DeckRemaining)
	}
	if snap.DeckRestarts > 0 {
		info += fmt.Sprintf(" (reshuffled %d×)", snap.DeckRestarts)
	}
	return title + InfoStyle.Render(info)
}

func (m *Model) renderWelcome() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Welcome to the table"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d rounds against the dealer, %+d for a win and %+d for a loss.\n",
		game.Rounds, game.WinPoints, -game.LossPoints)
	fmt.Fprintf(&b, "The dealer stands on %d. Live odds are drawn from the cards left in the deck.\n\n",
		game.DealerStandsOn)
	b.WriteString(m.nameInput.View())
	if m.nameErr != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.nameErr.Error()))
	}
	return paneStyle.Render(b.String())
}

func (m *Model) renderTable(snap game.Snapshot) string {
	var b strings.Builder

	dealerScore := snap.DealerScore.String()
	if snap.HoleHidden {
		dealerScore = fmt.Sprintf("showing %d", snap.DealerScore.Total)
	}
	fmt.Fprintf(&b, "Dealer  %s  %s\n", formatCards(snap.Dealer, snap.HoleHidden), InfoStyle.Render(dealerScore))
	fmt.Fprintf(&b, "You     %s  %s\n\n", formatCards(snap.Player, false), HandInfoStyle.Render(snap.PlayerScore.String()))

	switch snap.State {
	case game.Playing:
		b.WriteString(HandInfoStyle.Render("Hit or stand?"))
	case game.RoundEnd, game.SessionEnd:
		b.WriteString(m.renderOutcome(snap.Outcome))
	}

	if snap.State == game.SessionEnd {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render(fmt.Sprintf("Session over: %s scored %+d", snap.Name, snap.Score)))
	}
	if snap.Status != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(snap.Status))
	}
	return b.String()
}

func (m *Model) renderOutcome(o game.Outcome) string {
	line := fmt.Sprintf("%s (%+d)", o, o.Delta())
	switch o.Result() {
	case game.Win:
		return SuccessStyle.Render(line)
	case game.Loss:
		return ErrorStyle.Render(line)
	default:
		return WarningStyle.Render(line)
	}
}

func (m *Model) renderChart(snap game.Snapshot) string {
	if snap.Chart == game.ChartPMF {
		sample := m.sample
		k := sampleKey{N: snap.Population.N, K: snap.Population.K, n: snap.CurveDraws}
		if sample != nil && m.sampleFor != k {
			sample = nil
		}
		return renderPMF(snap, sample)
	}
	return renderRisk(snap)
}

func (m *Model) renderSidebar(height int) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Top scores"))
	b.WriteString("\n")

	entries := m.board.Entries()
	if len(entries) == 0 {
		b.WriteString(InfoStyle.Render("No scores yet"))
		b.WriteString("\n")
	}
	for i, e := range entries {
		fmt.Fprintf(&b, "%d. %-*s %+5d\n", i+1, game.MaxNameLength, e.Name, e.Score)
	}

	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Table log"))
	b.WriteString("\n")

	scores := b.String()
	logHeight := max(height-lipgloss.Height(scores)-2, 3)
	m.logViewport.Width = sidebarWidth
	m.logViewport.Height = logHeight
	m.logViewport.GotoBottom()

	return paneStyle.Width(sidebarWidth).Render(scores + GameLogStyle.Render(m.logViewport.View()))
}

func (m *Model) renderFooter(snap game.Snapshot) string {
	var b strings.Builder
	if snap.State != game.AwaitingName {
		b.WriteString(InfoStyle.Render(fmt.Sprintf("chart: %s  n=%d  ", snap.Chart, snap.Trials)))
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
