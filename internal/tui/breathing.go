package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mhollis/serene/internal/breathing"
	"github.com/mhollis/serene/internal/constants"
)

var (
	phaseTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	instructionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252")).
				Padding(0, 2)

	cycleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 2)
)

// tickMsg carries the epoch it was scheduled against so a tick from a
// stopped run can never advance the machine
type tickMsg struct {
	epoch uint64
}

func tick(epoch uint64) tea.Cmd {
	return tea.Tick(constants.BreathingTickInterval, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

// BreathingModel is the interactive guided breathing view
type BreathingModel struct {
	machine  *breathing.Machine
	progress progress.Model
	width    int
	height   int
	done     bool
}

func NewBreathingModel() BreathingModel {
	return BreathingModel{
		machine:  breathing.NewMachine(),
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (m BreathingModel) Init() tea.Cmd {
	epoch := m.machine.Start()
	return tick(epoch)
}

func (m BreathingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(msg.Width-8, 50)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.machine.Stop()
			return m, tea.Quit
		}

	case tickMsg:
		if !m.machine.Tick(msg.epoch) {
			// Stale tick from a stopped run
			return m, nil
		}
		if !m.machine.Running() {
			m.done = true
			return m, tea.Quit
		}
		return m, tick(msg.epoch)
	}
	return m, nil
}

func (m BreathingModel) View() string {
	if m.done {
		return phaseTitleStyle.Render("Complete!") + "\n" +
			instructionStyle.Render("Great job! How do you feel?") + "\n"
	}

	phase := m.machine.Phase()
	instruction := phase.Instruction()
	if seconds := m.machine.DisplaySeconds(); seconds > 0 && phase != breathing.PhaseIdle {
		instruction = fmt.Sprintf("%s (%ds)", instruction, seconds)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		phaseTitleStyle.Render(phase.String()),
		instructionStyle.Render(instruction),
		cycleStyle.Render(fmt.Sprintf("Cycle %d of %d", min(m.machine.CyclesCompleted()+1, constants.BreathingMaxCycles), constants.BreathingMaxCycles)),
		lipgloss.NewStyle().Padding(0, 2).Render(m.progress.ViewAs(m.phaseProgress())),
		helpStyle.Render("press q to stop"),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// phaseProgress returns how far the current phase countdown has advanced
func (m BreathingModel) phaseProgress() float64 {
	total := phaseDuration(m.machine.Phase()).Seconds()
	if total == 0 {
		return 0
	}
	return 1 - m.machine.RemainingSeconds()/total
}

func phaseDuration(p breathing.Phase) time.Duration {
	switch p {
	case breathing.PhasePreparing:
		return constants.BreathingPrepDuration
	case breathing.PhaseInhale:
		return constants.BreathingInhaleDuration
	case breathing.PhaseHold:
		return constants.BreathingHoldDuration
	case breathing.PhaseExhale:
		return constants.BreathingExhaleDuration
	case breathing.PhaseResting:
		return constants.BreathingRestDuration
	case breathing.PhaseComplete:
		return constants.BreathingCompleteDuration
	default:
		return 0
	}
}
