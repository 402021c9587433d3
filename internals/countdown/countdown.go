// Package countdown renders the time left until the next name change
// as a bubbletea program that updates once per second.
package countdown

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/minepkg/mcprofile/internals/minecraft/profile"
)

// Interval is the time between two recomputations
const Interval = time.Second

var (
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("211")).Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	eligibleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	boxStyle      = lipgloss.NewStyle().Margin(1, 2)
	checkMark     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("✓")
)

// TickMsg triggers a recomputation. Ticks scheduled before the last status
// change carry an old tag and are dropped.
type TickMsg struct {
	Time time.Time
	tag  int
}

// StatusMsg replaces the name change status (e.g. after a refresh).
// A nil status stops the countdown.
type StatusMsg struct {
	Status *profile.NameChangeStatus
}

// Model is the countdown view
type Model struct {
	// Status is nil while no name change data is present
	Status *profile.NameChangeStatus
	// Name is the current profile name (optional)
	Name string
	// QuitWhenEligible ends the program as soon as the name can be changed
	QuitWhenEligible bool

	countdown profile.Countdown
	progress  progress.Model
	ticking   bool
	quitting  bool
	// tag identifies the current tick loop
	tag int
}

// New returns a countdown for status
func New(status *profile.NameChangeStatus, name string) Model {
	return Model{
		Status: status,
		Name:   name,
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (m Model) tick() tea.Cmd {
	tag := m.tag
	return tea.Tick(Interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, tag: tag}
	})
}

// Ticking reports whether a tick is scheduled
func (m Model) Ticking() bool {
	return m.ticking
}

// Countdown returns the last computed countdown
func (m Model) Countdown() profile.Countdown {
	return m.countdown
}

func (m Model) Init() tea.Cmd {
	if m.Status == nil {
		return nil
	}
	tag := m.tag
	return func() tea.Msg { return TickMsg{Time: time.Now(), tag: tag} }
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit
		}
	case StatusMsg:
		m.Status = msg.Status
		// invalidate the tick that is already scheduled
		m.tag++
		if m.Status == nil {
			m.ticking = false
			return m, nil
		}
		m.ticking = true
		return m, m.tick()
	case TickMsg:
		if msg.tag != m.tag {
			return m, nil
		}
		if m.Status == nil {
			m.ticking = false
			return m, nil
		}
		m.countdown = m.Status.Tick(msg.Time)
		if m.QuitWhenEligible && m.Status.NameChangeAllowed {
			m.ticking = false
			m.quitting = true
			return m, tea.Quit
		}
		m.ticking = true
		return m, m.tick()
	}
	return m, nil
}

// elapsed returns the share of the waiting time that is over
func (m Model) elapsed() float64 {
	if m.Status == nil || m.countdown.Done() {
		return 1
	}
	share := 1 - float64(m.countdown.Remaining)/float64(profile.NameChangeInterval)
	if share < 0 {
		return 0
	}
	return share
}

func (m Model) View() string {
	if m.Status == nil {
		return boxStyle.Render(subtleStyle.Render("No name change data"))
	}

	head := "Name change"
	if m.Name != "" {
		head = fmt.Sprintf("Name change for %s", nameStyle.Render(m.Name))
	}

	var body string
	if m.Status.NameChangeAllowed {
		body = fmt.Sprintf("%s %s", checkMark, eligibleStyle.Render("You can change your name now"))
	} else {
		body = fmt.Sprintf(
			"Possible in %s\n%s",
			timeStyle.Render(m.countdown.String()),
			m.progress.ViewAs(m.elapsed()),
		)
	}

	footer := ""
	if !m.quitting {
		footer = "\n" + subtleStyle.Render("press q to quit")
	}
	return boxStyle.Render(head + "\n\n" + body + footer)
}
