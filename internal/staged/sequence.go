package staged

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidSequence is returned by NewSequence for a malformed table.
var ErrInvalidSequence = errors.New("invalid stage sequence")

// Step is one row of a journey's transition table. Object builds the
// stage's validation view over the entity; a nil Object is always valid.
type Step[E any] struct {
	Name   string
	Back   string
	Next   string
	Object func(E) Object
}

// Sequence is the fixed catalogue of stages for one journey. The first step
// is the initial stage. Sequences are immutable once built.
type Sequence[E any] struct {
	names    []string
	steps    map[string]Step[E]
	terminal string
}

// NewSequence builds a sequence from its transition table. Names must be
// unique and non-empty, every Back and Next target must exist, terminal must
// be one of the steps, and following Next from any stage must reach the
// terminal stage without revisiting a stage.
func NewSequence[E any](terminal string, steps ...Step[E]) (*Sequence[E], error) {
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no steps", ErrInvalidSequence)
	}

	seq := &Sequence[E]{
		names:    make([]string, 0, len(steps)),
		steps:    make(map[string]Step[E], len(steps)),
		terminal: terminal,
	}
	for _, step := range steps {
		if step.Name == "" {
			return nil, fmt.Errorf("%w: empty stage name", ErrInvalidSequence)
		}
		if _, dup := seq.steps[step.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate stage %q", ErrInvalidSequence, step.Name)
		}
		seq.names = append(seq.names, step.Name)
		seq.steps[step.Name] = step
	}

	if _, ok := seq.steps[terminal]; !ok {
		return nil, fmt.Errorf("%w: terminal stage %q not declared", ErrInvalidSequence, terminal)
	}

	for _, step := range steps {
		if step.Name == terminal {
			continue
		}
		for _, target := range []string{step.Back, step.Next} {
			if _, ok := seq.steps[target]; !ok {
				return nil, fmt.Errorf("%w: stage %q targets unknown stage %q", ErrInvalidSequence, step.Name, target)
			}
		}
	}
	for _, name := range seq.names {
		if err := seq.checkForward(name); err != nil {
			return nil, err
		}
	}

	return seq, nil
}

// MustSequence is like NewSequence but panics on a malformed table. It is
// meant for package-level journey declarations.
func MustSequence[E any](terminal string, steps ...Step[E]) *Sequence[E] {
	seq, err := NewSequence(terminal, steps...)
	if err != nil {
		panic(err)
	}
	return seq
}

// checkForward follows Next from start and fails if it loops before
// reaching the terminal stage.
func (s *Sequence[E]) checkForward(start string) error {
	visited := make(map[string]bool, len(s.names))
	for name := start; name != s.terminal; name = s.steps[name].Next {
		if visited[name] {
			return fmt.Errorf("%w: stage %q never reaches %q moving next", ErrInvalidSequence, start, s.terminal)
		}
		visited[name] = true
	}
	return nil
}

// Names returns the stage names in declaration order.
func (s *Sequence[E]) Names() []string {
	return slices.Clone(s.names)
}

// Initial returns the name of the first stage.
func (s *Sequence[E]) Initial() string {
	return s.names[0]
}

// Terminal returns the name of the terminal stage.
func (s *Sequence[E]) Terminal() string {
	return s.terminal
}

// Lookup returns name if it is one of the sequence's stages and the initial
// stage's name otherwise. Untrusted input never selects an undefined stage.
func (s *Sequence[E]) Lookup(name string) string {
	if _, ok := s.steps[name]; ok {
		return name
	}
	return s.Initial()
}

// Stage returns the stage named by Lookup(name), bound to entity.
func (s *Sequence[E]) Stage(name string, entity E) *Stage[E] {
	return &Stage[E]{
		seq:    s,
		step:   s.steps[s.Lookup(name)],
		entity: entity,
	}
}
