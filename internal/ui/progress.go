package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// Library colour palette 📚
var (
	// Core palette (dark to bright)
	burgundy  = lipgloss.Color("#7B2D26") // Worn leather
	gold      = lipgloss.Color("#C9A227") // Gilt edges
	leafGreen = lipgloss.Color("#4A9B4A") // Completion green

	// Accent colours
	fadedSepia = lipgloss.Color("#8B7355") // Sepia for subtle text
)

// Phase represents the current pipeline phase
type Phase int

const (
	PhaseTokenize Phase = iota
	PhaseRendering
	PhaseComplete
)

// TokenizeDone reports the token statistics gathered before rendering
type TokenizeDone struct {
	Words    int
	Distinct int
	Side     int
}

// RenderProgress reports the fraction of mosaic cells painted so far
type RenderProgress struct {
	Frac float64
}

// RenderComplete signals that the mosaic has been written to disk
type RenderComplete struct {
	Output   string
	Words    int
	Distinct int
	Side     int
	Values   int
	FileSize int64
	Elapsed  time.Duration
}

// progressQuitMsg is sent when it's time to quit after showing completion
type progressQuitMsg struct{}

// Model implements the Bubbletea model for the painting pipeline
type Model struct {
	spin  spinner.Model
	bar   progress.Model
	phase Phase

	input    string
	stats    TokenizeDone
	frac     float64
	complete *RenderComplete

	startTime       time.Time
	completionTime  time.Time
	width           int
	minDisplayTime  time.Duration // Minimum time to show UI
	completionDelay time.Duration // Time to show completion screen
}

// NewModel creates the progress UI model for one painting run
func NewModel(input string) *Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(gold)),
	)

	bar := progress.New(
		progress.WithGradient(string(burgundy), string(gold)),
		progress.WithWidth(40),
		progress.WithoutPercentage(), // Hide built-in percentage display
	)

	return &Model{
		spin:            s,
		bar:             bar,
		phase:           PhaseTokenize,
		input:           input,
		startTime:       time.Now(),
		minDisplayTime:  500 * time.Millisecond, // Show UI for at least 0.5 seconds
		completionDelay: 2 * time.Second,        // Show completion for 2 seconds
	}
}

// Init starts the spinner ticking
func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = min(msg.Width-30, 50)
		return m, nil

	case spinner.TickMsg:
		if m.phase != PhaseTokenize {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case TokenizeDone:
		m.stats = msg
		m.phase = PhaseRendering
		return m, nil

	case RenderProgress:
		m.frac = msg.Frac
		return m, nil

	case RenderComplete:
		m.complete = &msg
		m.phase = PhaseComplete
		m.completionTime = time.Now()

		// Calculate how long to show completion screen
		elapsed := m.completionTime.Sub(m.startTime)
		delay := m.completionDelay

		// If total time is less than minDisplayTime, extend completion delay
		if elapsed < m.minDisplayTime {
			additionalTime := m.minDisplayTime - elapsed
			delay = m.completionDelay + additionalTime
		}

		// Show completion screen for calculated delay before quitting
		return m, tea.Tick(delay, func(t time.Time) tea.Msg {
			return progressQuitMsg{}
		})

	case progressQuitMsg:
		// Timer expired, now we can quit
		return m, tea.Quit

	case tea.KeyMsg:
		// Allow any key to skip the completion screen delay
		if m.complete != nil {
			return m, tea.Quit
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.phase == PhaseComplete {
		return m.renderComplete()
	}

	return m.renderProgress()
}

func (m *Model) renderProgress() string {
	var s strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(burgundy).
		Render("Bookmosaic 📚")

	s.WriteString(title)
	s.WriteString("\n")
	s.WriteString(lipgloss.NewStyle().Faint(true).Render("Painting " + m.input))
	s.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(fadedSepia)

	if m.phase == PhaseTokenize {
		s.WriteString(m.spin.View())
		s.WriteString(labelStyle.Render(" Tokenizing text..."))
	} else {
		s.WriteString(labelStyle.Render("Words: "))
		s.WriteString(humanize.Comma(int64(m.stats.Words)))
		s.WriteString("  │  ")
		s.WriteString(labelStyle.Render("Distinct: "))
		s.WriteString(humanize.Comma(int64(m.stats.Distinct)))
		s.WriteString("  │  ")
		s.WriteString(labelStyle.Render("Canvas: "))
		s.WriteString(fmt.Sprintf("%d×%d", m.stats.Side, m.stats.Side))
		s.WriteString("\n\n")

		s.WriteString(labelStyle.Render("Painting mosaic..."))
		s.WriteString("\n")
		s.WriteString(m.bar.ViewAs(m.frac))
		s.WriteString(fmt.Sprintf(" %3.0f%%", m.frac*100))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(burgundy).
		Padding(1, 2).
		Render(s.String())
}

func (m *Model) renderComplete() string {
	var s strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(leafGreen).
		Render("✓ Mosaic Complete!")

	s.WriteString(title)
	s.WriteString("\n\n")

	s.WriteString(lipgloss.NewStyle().Faint(true).Render("Text Profile:"))
	s.WriteString("\n")

	s.WriteString(fmt.Sprintf("  Words:      %s\n", humanize.Comma(int64(m.complete.Words))))
	s.WriteString(fmt.Sprintf("  Distinct:   %s\n", humanize.Comma(int64(m.complete.Distinct))))
	s.WriteString(fmt.Sprintf("  Values:     %s\n", humanize.Comma(int64(m.complete.Values))))
	s.WriteString(fmt.Sprintf("  Canvas:     %d×%d px\n\n", m.complete.Side, m.complete.Side))

	s.WriteString(fmt.Sprintf("  Output:     %s\n", m.complete.Output))
	s.WriteString(fmt.Sprintf("  File Size:  %s\n\n", humanize.Bytes(uint64(m.complete.FileSize))))

	s.WriteString(fmt.Sprintf("Painted in %.2fs", m.complete.Elapsed.Seconds()))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(leafGreen).
		Padding(1, 2).
		Render(s.String()) + "\n"
}
