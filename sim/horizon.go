package sim

import "fmt"

// HorizonMode selects the horizon-termination policy for a run.
type HorizonMode string

const (
	// HorizonHard terminates the loop the instant any popped event's time
	// exceeds the horizon. That event and everything after it are discarded
	// and the end time is pinned to the horizon. Arrivals are always
	// rescheduled; the cutoff is enforced only at dispatch.
	HorizonHard HorizonMode = "hard"

	// HorizonDrain stops enqueueing arrivals whose time exceeds the horizon
	// but dispatches everything already queued until the event heap is
	// empty. The end time is the time of the last dispatched event, which
	// may exceed the horizon.
	HorizonDrain HorizonMode = "drain"
)

// HorizonPolicy governs when new arrivals stop being generated and whether
// dispatch is cut short at the horizon. The two implementations produce
// materially different served/dropped/endTime statistics for the same
// inputs, so the choice is explicit configuration, never a default picked
// silently.
type HorizonPolicy interface {
	// ScheduleNextArrival reports whether an arrival computed for time next
	// should be enqueued.
	ScheduleNextArrival(next, horizon float64) bool
	// CutoffAtDispatch reports whether popping an event at time t ends the
	// run before the event executes.
	CutoffAtDispatch(t, horizon float64) bool
}

type hardCutoff struct{}

func (hardCutoff) ScheduleNextArrival(next, horizon float64) bool { return true }
func (hardCutoff) CutoffAtDispatch(t, horizon float64) bool       { return t > horizon }

type drainAfterHorizon struct{}

func (drainAfterHorizon) ScheduleNextArrival(next, horizon float64) bool { return next <= horizon }
func (drainAfterHorizon) CutoffAtDispatch(t, horizon float64) bool       { return false }

// NewHorizonPolicy creates the policy for the given mode. An empty mode
// defaults to HorizonDrain, the general multi-server behavior.
func NewHorizonPolicy(mode HorizonMode) (HorizonPolicy, error) {
	switch mode {
	case HorizonHard:
		return hardCutoff{}, nil
	case HorizonDrain, "":
		return drainAfterHorizon{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown horizon mode %q", ErrInvalidConfiguration, mode)
	}
}

// AvailableHorizonModes returns the supported horizon mode names.
func AvailableHorizonModes() []string {
	return []string{string(HorizonHard), string(HorizonDrain)}
}
