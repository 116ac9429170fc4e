package breathing

import (
	"math"
	"time"

	"github.com/mhollis/serene/internal/constants"
)

// Phase is a state of the guided 4-7-8 breathing exercise
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePreparing
	PhaseInhale
	PhaseHold
	PhaseExhale
	PhaseResting
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhasePreparing:
		return "Get ready..."
	case PhaseInhale:
		return "Breathe In"
	case PhaseHold:
		return "Hold"
	case PhaseExhale:
		return "Breathe Out"
	case PhaseResting:
		return "Rest"
	case PhaseComplete:
		return "Complete!"
	default:
		return "Ready to begin?"
	}
}

// Instruction returns the guidance text shown below the phase title
func (p Phase) Instruction() string {
	switch p {
	case PhasePreparing:
		return "Starting in 3 seconds"
	case PhaseInhale:
		return "Inhale through your nose for 4 seconds"
	case PhaseHold:
		return "Hold your breath for 7 seconds"
	case PhaseExhale:
		return "Exhale through your mouth for 8 seconds"
	case PhaseResting:
		return "Take a moment before the next cycle"
	case PhaseComplete:
		return "Great job! How do you feel?"
	default:
		return "Click start to begin the 4-7-8 breathing technique"
	}
}

// Machine drives the fixed 4-phase, 4-cycle breathing sequence. It holds no
// timers of its own: the driver calls Tick once per tick interval (0.1s) and
// schedules the next call itself, so stopping the machine instantly orphans
// any tick already in flight.
//
// The epoch counter is the cancellation token. Start and Stop both bump it;
// a tick carrying a stale epoch is a no-op.
type Machine struct {
	phase     Phase
	cycles    int
	ticksLeft int
	epoch     uint64
}

func NewMachine() *Machine {
	return &Machine{phase: PhaseIdle}
}

func durationTicks(d time.Duration) int {
	return int(d / constants.BreathingTickInterval)
}

// Start begins a new session. A session already in progress is fully stopped
// first so two tick chains can never overlap.
func (m *Machine) Start() uint64 {
	if m.phase != PhaseIdle {
		m.Stop()
	}
	m.epoch++
	m.phase = PhasePreparing
	m.cycles = 0
	m.ticksLeft = durationTicks(constants.BreathingPrepDuration)
	return m.epoch
}

// Stop cancels the session from any state and returns to Idle. Pending ticks
// scheduled against the old epoch become no-ops.
func (m *Machine) Stop() {
	m.epoch++
	m.phase = PhaseIdle
	m.cycles = 0
	m.ticksLeft = 0
}

// Tick advances the machine by one tick interval. It returns false, without
// mutating anything, when the supplied epoch is stale or the machine is idle.
func (m *Machine) Tick(epoch uint64) bool {
	if epoch != m.epoch || m.phase == PhaseIdle {
		return false
	}

	m.ticksLeft--
	if m.ticksLeft > 0 {
		return true
	}

	switch m.phase {
	case PhasePreparing:
		m.enter(PhaseInhale, constants.BreathingInhaleDuration)
	case PhaseInhale:
		m.enter(PhaseHold, constants.BreathingHoldDuration)
	case PhaseHold:
		m.enter(PhaseExhale, constants.BreathingExhaleDuration)
	case PhaseExhale:
		m.cycles++
		if m.cycles < constants.BreathingMaxCycles {
			m.enter(PhaseResting, constants.BreathingRestDuration)
		} else {
			m.enter(PhaseComplete, constants.BreathingCompleteDuration)
		}
	case PhaseResting:
		m.enter(PhaseInhale, constants.BreathingInhaleDuration)
	case PhaseComplete:
		// Natural completion resets to the idle message without re-entering
		// the preparation countdown.
		m.phase = PhaseIdle
		m.ticksLeft = 0
	}
	return true
}

func (m *Machine) enter(phase Phase, d time.Duration) {
	m.phase = phase
	m.ticksLeft = durationTicks(d)
}

// Phase returns the current phase
func (m *Machine) Phase() Phase {
	return m.phase
}

// Running reports whether a session is in progress
func (m *Machine) Running() bool {
	return m.phase != PhaseIdle
}

// Epoch returns the current cancellation epoch for scheduling ticks
func (m *Machine) Epoch() uint64 {
	return m.epoch
}

// CyclesCompleted returns the number of finished breath cycles
func (m *Machine) CyclesCompleted() int {
	return m.cycles
}

// RemainingSeconds returns the countdown remaining in the current phase
func (m *Machine) RemainingSeconds() float64 {
	return float64(m.ticksLeft) * constants.BreathingTickInterval.Seconds()
}

// DisplaySeconds returns the remaining-seconds value to show the user,
// the ceiling of the exact countdown
func (m *Machine) DisplaySeconds() int {
	return int(math.Ceil(m.RemainingSeconds()))
}

// ActiveDuration returns the idealized length of a full uninterrupted
// session, excluding the initial preparation and the completion display.
// Derived from the phase and cycle constants.
func ActiveDuration() time.Duration {
	perCycle := constants.BreathingInhaleDuration + constants.BreathingHoldDuration + constants.BreathingExhaleDuration
	rests := time.Duration(constants.BreathingMaxCycles-1) * constants.BreathingRestDuration
	return time.Duration(constants.BreathingMaxCycles)*perCycle + rests
}
