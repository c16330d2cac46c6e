package monitor

import "time"

// RelayStatus is the committed relay state handed out to readers.
type RelayStatus struct {
	State   RelayState `json:"state"`
	Cause   RelayCause `json:"cause"`
	Latched bool       `json:"latched"`
	Since   time.Time  `json:"since"`
}

// RelayDecision is the outcome of one relay evaluation. At is when the
// resulting status took effect: the commit time for a change, the current
// status time otherwise.
type RelayDecision struct {
	State    RelayState `json:"state"`
	Previous RelayState `json:"previous"`
	Cause    RelayCause `json:"cause"`
	Latched  bool       `json:"latched"`
	Changed  bool       `json:"changed"`
	At       time.Time  `json:"at"`
}

// Policy holds the relay rules that are configurable.
type Policy struct {
	// StrictHighPower switches the relay off on HighPower instead of only
	// alerting. The cut-off is not latched.
	StrictHighPower bool
}

func hold(current RelayStatus) RelayDecision {
	return RelayDecision{
		State:    current.State,
		Previous: current.State,
		Cause:    current.Cause,
		Latched:  current.Latched,
		At:       current.Since,
	}
}

func transition(current RelayStatus, to RelayState, cause RelayCause, latched bool) RelayDecision {
	return RelayDecision{
		State:    to,
		Previous: current.State,
		Cause:    cause,
		Latched:  latched,
		Changed:  to != current.State || cause != current.Cause || latched != current.Latched,
	}
}

// DecideRelay applies the relay state machine to one classification.
//
//   - a fault (over/undervoltage, overcurrent) forces Off and latches
//   - a latched relay stays Off whatever the classification
//   - a manual Off is only undone by an operator
//   - HighPower forces a non-latched Off under the strict policy
//   - a non-latched HighPower Off returns to On once the power drops
//     back to or below the threshold
func DecideRelay(c Classification, current RelayStatus, p Policy) RelayDecision {
	if current.Latched {
		return hold(current)
	}
	if c.HasFault() {
		return transition(current, RelayOff, CauseFault, true)
	}
	if current.State == RelayOff && current.Cause == CauseManual {
		return hold(current)
	}
	if p.StrictHighPower && c.Has(AlertHighPower) {
		return transition(current, RelayOff, CauseHighPower, false)
	}
	if current.State == RelayOff && current.Cause == CauseHighPower && !c.Has(AlertHighPower) {
		return transition(current, RelayOn, CauseNone, false)
	}
	return hold(current)
}
