package domain

import (
	"slices"
	"sort"
	"strings"
)

// FieldErrors is an ordered collection of validation messages keyed by field
// path. Nested fields use dotted paths such as "creator_signature.email".
// Messages are de-duplicated per field and keep their insertion order.
//
// The zero value is ready to use. FieldErrors is not safe for concurrent use;
// it belongs to a single request-scoped entity.
type FieldErrors struct {
	order []string
	msgs  map[string][]string
}

// Add records msg against field. Adding a message that is already present for
// the field is a no-op.
func (e *FieldErrors) Add(field, msg string) {
	if e.msgs == nil {
		e.msgs = make(map[string][]string)
	}

	existing, ok := e.msgs[field]
	if !ok {
		e.order = append(e.order, field)
	}
	for _, m := range existing {
		if m == msg {
			return
		}
	}
	e.msgs[field] = append(existing, msg)
}

// On returns a copy of the messages recorded for field, or nil.
func (e *FieldErrors) On(field string) []string {
	msgs := e.msgs[field]
	if len(msgs) == 0 {
		return nil
	}
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}

// Has reports whether any message is recorded for field.
func (e *FieldErrors) Has(field string) bool {
	return len(e.msgs[field]) > 0
}

// Fields returns the field paths carrying messages, in the order they were
// first added.
func (e *FieldErrors) Fields() []string {
	out := make([]string, len(e.order))
	copy(out, e.order)
	return out
}

// Len returns the number of fields carrying messages.
func (e *FieldErrors) Len() int {
	return len(e.order)
}

// Empty reports whether no messages are recorded.
func (e *FieldErrors) Empty() bool {
	return len(e.order) == 0
}

// Merge adds every message in other to e, preserving other's order.
func (e *FieldErrors) Merge(other *FieldErrors) {
	if other == nil {
		return
	}
	for _, field := range other.order {
		for _, msg := range other.msgs[field] {
			e.Add(field, msg)
		}
	}
}

// Clone returns an independent copy of e.
func (e *FieldErrors) Clone() *FieldErrors {
	out := &FieldErrors{}
	out.Merge(e)
	return out
}

// AddValidation records the fields of a ValidationError. Fields are added in
// sorted order so the result does not depend on map iteration.
func (e *FieldErrors) AddValidation(verr *ValidationError) {
	if verr == nil {
		return
	}
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		e.Add(field, verr.Fields[field])
	}
}

// Err returns nil when e is empty, otherwise a *ValidationError whose field
// messages are the recorded messages joined with "; ".
func (e *FieldErrors) Err() error {
	if e.Empty() {
		return nil
	}
	fields := make(map[string]string, len(e.order))
	for _, field := range e.order {
		fields[field] = strings.Join(e.msgs[field], "; ")
	}
	return &ValidationError{Fields: fields}
}

// Propagate returns a new collection holding parent's messages followed by
// child's messages re-keyed under prefix ("prefix.field"). A child message on
// the empty field path is keyed as prefix itself. Neither input is modified.
func Propagate(parent, child *FieldErrors, prefix string) *FieldErrors {
	out := parent.Clone()
	if child == nil {
		return out
	}
	for _, field := range child.order {
		key := prefix
		if field != "" {
			key = prefix + "." + field
		}
		for _, msg := range child.msgs[field] {
			out.Add(key, msg)
		}
	}
	return out
}

// Rule checks one aspect of a value and records any failures in errs.
type Rule[T any] func(v T, errs *FieldErrors)

// Refuser is an entity that remembers the field errors its store reported
// when a save was refused.
type Refuser interface {
	Refusals() *FieldErrors
}

// Refused returns a rule that reports the store's refusals of fields again,
// so revalidating an entity the store refused fails where the store failed
// it. With no fields every refusal is reported.
func Refused[T Refuser](fields ...string) Rule[T] {
	return func(v T, errs *FieldErrors) {
		refused := v.Refusals()
		for _, field := range refused.Fields() {
			if len(fields) > 0 && !slices.Contains(fields, field) {
				continue
			}
			for _, msg := range refused.On(field) {
				errs.Add(field, msg)
			}
		}
	}
}
