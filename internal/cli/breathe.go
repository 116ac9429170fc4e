package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mhollis/serene/internal/breathing"
	"github.com/mhollis/serene/internal/constants"
	"github.com/mhollis/serene/internal/tui"
)

type BreatheCmd struct {
	Plain bool `help:"Run without the interactive view, printing each phase."`
}

func (c *BreatheCmd) Run(ctx *Context) error {
	if c.Plain {
		return runPlain()
	}

	p := tea.NewProgram(tui.NewBreathingModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("breathing session failed: %w", err)
	}
	return nil
}

// runPlain drives the state machine with real-time ticks and prints each
// phase transition
func runPlain() error {
	machine := breathing.NewMachine()
	epoch := machine.Start()

	lastPhase := breathing.PhaseIdle
	for machine.Running() {
		if machine.Phase() != lastPhase {
			lastPhase = machine.Phase()
			fmt.Printf("%s: %s\n", lastPhase, lastPhase.Instruction())
		}
		time.Sleep(constants.BreathingTickInterval)
		machine.Tick(epoch)
	}

	fmt.Println("Session complete. Great job!")
	return nil
}
