package staged

// Move is the direction a user asks to travel through a journey.
type Move string

const (
	// MoveNext advances when the current stage is valid.
	MoveNext Move = "next"
	// MoveBack returns to the previous stage without validating.
	MoveBack Move = "back"
)

// Stage is one named step of a journey bound to the journey's entity.
// Its Object is built on first use and reused for the Stage's lifetime.
type Stage[E any] struct {
	seq    *Sequence[E]
	step   Step[E]
	entity E

	object         Object
	objectComputed bool
}

// Name returns the stage name, always one of the sequence's names.
func (s *Stage[E]) Name() string {
	return s.step.Name
}

// Complete reports whether s is the terminal stage.
func (s *Stage[E]) Complete() bool {
	return s.step.Name == s.seq.terminal
}

// Object returns the stage's validation view.
func (s *Stage[E]) Object() Object {
	if !s.objectComputed {
		switch {
		case s.Complete() || s.step.Object == nil:
			s.object = Always()
		default:
			s.object = s.step.Object(s.entity)
		}
		s.objectComputed = true
	}
	return s.object
}

// Valid validates the stage's slice of the entity.
func (s *Stage[E]) Valid() bool {
	return s.Object().Valid()
}

// GoBack returns the predecessor stage without validating.
func (s *Stage[E]) GoBack() *Stage[E] {
	if s.Complete() {
		return s
	}
	return s.seq.Stage(s.step.Back, s.entity)
}

// GoNext returns the successor stage without validating.
func (s *Stage[E]) GoNext() *Stage[E] {
	if s.Complete() {
		return s
	}
	return s.seq.Stage(s.step.Next, s.entity)
}

// Go applies move. Back is unconditional, next requires the stage to be
// valid, and anything else stays put. The terminal stage always returns
// itself.
func (s *Stage[E]) Go(move Move) *Stage[E] {
	if s.Complete() {
		return s
	}
	switch move {
	case MoveBack:
		return s.GoBack()
	case MoveNext:
		if s.Valid() {
			return s.GoNext()
		}
		return s
	default:
		return s
	}
}
