package staged

import "context"

// SaveFunc persists a journey's entity. It returns false with a nil error
// when the entity failed validation (errors recorded on the entity) and a
// non-nil error only when persistence itself is unavailable.
type SaveFunc func(ctx context.Context) (bool, error)

// Manager computes where one request lands in a journey and finalizes the
// journey once it reaches the terminal stage. A Manager serves one request.
type Manager[E any] struct {
	seq      *Sequence[E]
	entity   E
	previous string
	move     Move

	starting         *Stage[E]
	startingComputed bool
	result           *Stage[E]
	resultComputed   bool
}

// NewManager binds seq to entity, the stage name the request claims to come
// from and the requested move. Both strings are untrusted.
func NewManager[E any](seq *Sequence[E], entity E, previous string, move Move) *Manager[E] {
	return &Manager[E]{
		seq:      seq,
		entity:   entity,
		previous: previous,
		move:     move,
	}
}

// StartingStage returns the stage named by the request, or the initial stage
// for an unknown name.
func (m *Manager[E]) StartingStage() *Stage[E] {
	if !m.startingComputed {
		m.starting = m.seq.Stage(m.previous, m.entity)
		m.startingComputed = true
	}
	return m.starting
}

// ResultStage returns the starting stage after applying the move. It is
// computed once; later calls return the same Stage.
func (m *Manager[E]) ResultStage() *Stage[E] {
	if !m.resultComputed {
		m.result = m.StartingStage().Go(m.move)
		m.resultComputed = true
	}
	return m.result
}

// Create saves the entity when the result stage is terminal. It returns
// false without saving otherwise. When save reports a validation failure
// the result stage is moved back to the first stage that fails validation.
// A save error leaves the result stage unchanged.
func (m *Manager[E]) Create(ctx context.Context, save SaveFunc) (bool, error) {
	if !m.ResultStage().Complete() {
		return false, nil
	}

	ok, err := save(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}

	m.resetResultStage()
	return false, nil
}

// resetResultStage walks forward from the initial stage while stages
// validate and stops on the first invalid or terminal stage.
func (m *Manager[E]) resetResultStage() {
	stage := m.seq.Stage(m.seq.Initial(), m.entity)
	for !stage.Complete() && stage.Valid() {
		stage = stage.GoNext()
	}
	m.result = stage
	m.resultComputed = true
}
