package game

// Phase is the explosion sequencer state.
type Phase int

const (
	// PhaseActive is normal play: the creature moves and can be hit.
	PhaseActive Phase = iota
	// PhaseExploding freezes the creature for the explosion pause.
	PhaseExploding
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseExploding:
		return "exploding"
	default:
		return "unknown"
	}
}

// Sequencer drives the explosion pause that follows the final hit.
// The zero value is Active with a zero timer.
type Sequencer struct {
	phase Phase
	timer int
}

func (s *Sequencer) Phase() Phase { return s.phase }

// Timer counts frames spent exploding; 0 while active.
func (s *Sequencer) Timer() int { return s.timer }

func (s *Sequencer) Active() bool { return s.phase == PhaseActive }

// Arm starts an explosion. It reports false if one is already running.
func (s *Sequencer) Arm() bool {
	if s.phase == PhaseExploding {
		return false
	}
	s.phase = PhaseExploding
	s.timer = 0
	return true
}

// Step advances an explosion by one frame. burst is true on the first frame
// only; done is true on the frame the pause ends and the sequencer returns
// to Active. Step is a no-op while active.
func (s *Sequencer) Step() (burst, done bool) {
	if s.phase != PhaseExploding {
		return false, false
	}

	burst = s.timer == 0
	s.timer++
	if s.timer > ExplosionPause {
		s.Reset()
		done = true
	}
	return burst, done
}

// Reset returns to Active and clears the timer.
func (s *Sequencer) Reset() {
	s.phase = PhaseActive
	s.timer = 0
}
