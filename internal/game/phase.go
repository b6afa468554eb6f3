package game

// Phase is one step of the fixed turn cycle.
type Phase string

const (
	PhaseDraw   Phase = "draw"
	PhaseMain   Phase = "main"
	PhaseCombat Phase = "combat"
	PhaseEnd    Phase = "end"
)

// phaseSequence is the fixed turn cycle. Advancing past the last entry wraps
// to the first and starts a new turn.
var phaseSequence = []Phase{
	PhaseDraw,
	PhaseMain,
	PhaseCombat,
	PhaseEnd,
}

// FirstPhase returns the opening phase of a turn.
func FirstPhase() Phase {
	return phaseSequence[0]
}

// ParsePhase maps a phase name to its Phase. Unknown names report false.
func ParsePhase(name string) (Phase, bool) {
	for _, p := range phaseSequence {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// Phases returns the turn cycle in order.
func Phases() []Phase {
	seq := make([]Phase, len(phaseSequence))
	copy(seq, phaseSequence)
	return seq
}

// Next returns the phase after p. The second return reports a wrap back to
// the first phase, which marks the start of a new turn. An unknown phase
// resets to the first phase without wrapping.
func (p Phase) Next() (Phase, bool) {
	for i, cur := range phaseSequence {
		if cur == p {
			if i == len(phaseSequence)-1 {
				return phaseSequence[0], true
			}
			return phaseSequence[i+1], false
		}
	}
	return phaseSequence[0], false
}

// IsValid reports whether p is one of the turn cycle phases.
func (p Phase) IsValid() bool {
	for _, cur := range phaseSequence {
		if cur == p {
			return true
		}
	}
	return false
}

func (p Phase) String() string {
	return string(p)
}
