package domain

import (
	"errors"
	"slices"
	"testing"
)

func TestFieldErrors_ZeroValue(t *testing.T) {
	t.Parallel()

	var errs FieldErrors
	if !errs.Empty() {
		t.Error("zero value Empty() = false, want true")
	}
	if errs.Len() != 0 {
		t.Errorf("zero value Len() = %d, want 0", errs.Len())
	}
	if got := errs.On("name"); got != nil {
		t.Errorf("On(name) = %v, want nil", got)
	}
	if err := errs.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestFieldErrors_AddDeduplicates(t *testing.T) {
	t.Parallel()

	var errs FieldErrors
	errs.Add("email", "must be completed")
	errs.Add("email", "must be completed")
	errs.Add("email", "is invalid")

	want := []string{"must be completed", "is invalid"}
	if got := errs.On("email"); !slices.Equal(got, want) {
		t.Errorf("On(email) = %v, want %v", got, want)
	}
	if errs.Len() != 1 {
		t.Errorf("Len() = %d, want 1", errs.Len())
	}
}

func TestFieldErrors_FieldsKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	var errs FieldErrors
	errs.Add("name", "a")
	errs.Add("email", "b")
	errs.Add("name", "c")
	errs.Add("postcode", "d")

	want := []string{"name", "email", "postcode"}
	if got := errs.Fields(); !slices.Equal(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}

func TestFieldErrors_OnReturnsCopy(t *testing.T) {
	t.Parallel()

	var errs FieldErrors
	errs.Add("name", "must be completed")

	got := errs.On("name")
	got[0] = "mutated"

	if errs.On("name")[0] != "must be completed" {
		t.Error("mutating On() result changed the collection")
	}
}

func TestFieldErrors_Merge(t *testing.T) {
	t.Parallel()

	var a, b FieldErrors
	a.Add("name", "must be completed")
	b.Add("name", "must be completed")
	b.Add("email", "is invalid")

	a.Merge(&b)
	a.Merge(nil)

	if !slices.Equal(a.Fields(), []string{"name", "email"}) {
		t.Errorf("Fields() = %v, want [name email]", a.Fields())
	}
	if len(a.On("name")) != 1 {
		t.Errorf("On(name) = %v, want one message", a.On("name"))
	}
}

func TestFieldErrors_AddValidationIsSorted(t *testing.T) {
	t.Parallel()

	var errs FieldErrors
	errs.AddValidation(&ValidationError{Fields: map[string]string{
		"postcode": "is invalid",
		"email":    "has already signed this petition",
	}})
	errs.AddValidation(nil)

	if !slices.Equal(errs.Fields(), []string{"email", "postcode"}) {
		t.Errorf("Fields() = %v, want [email postcode]", errs.Fields())
	}
}

func TestFieldErrors_Err(t *testing.T) {
	t.Parallel()

	var errs FieldErrors
	errs.Add("email", "must be completed")
	errs.Add("email", "is invalid")

	err := errs.Err()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Err() = %v, want ErrValidation", err)
	}

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Err() type = %T, want *ValidationError", err)
	}
	if verr.Fields["email"] != "must be completed; is invalid" {
		t.Errorf("Fields[email] = %q", verr.Fields["email"])
	}
}

func TestPropagate(t *testing.T) {
	t.Parallel()

	var parent, child FieldErrors
	parent.Add("action", "must be completed")
	child.Add("email", "must be completed")
	child.Add("", "must be completed")

	got := Propagate(&parent, &child, "creator_signature")

	want := []string{"action", "creator_signature.email", "creator_signature"}
	if !slices.Equal(got.Fields(), want) {
		t.Errorf("Fields() = %v, want %v", got.Fields(), want)
	}

	// Inputs are untouched.
	if parent.Len() != 1 {
		t.Errorf("parent.Len() = %d, want 1", parent.Len())
	}
	if child.Has("creator_signature.email") {
		t.Error("child was re-keyed in place")
	}
}

func TestPropagate_DeduplicatesAgainstParent(t *testing.T) {
	t.Parallel()

	var parent, child FieldErrors
	parent.Add("creator_signature.email", "must be completed")
	child.Add("email", "must be completed")

	got := Propagate(&parent, &child, "creator_signature")

	if msgs := got.On("creator_signature.email"); len(msgs) != 1 {
		t.Errorf("On(creator_signature.email) = %v, want one message", msgs)
	}
}

func TestPropagate_NilInputs(t *testing.T) {
	t.Parallel()

	got := Propagate(nil, nil, "creator_signature")
	if got == nil || !got.Empty() {
		t.Errorf("Propagate(nil, nil) = %v, want empty collection", got)
	}
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{"b": "two", "a": "one"}}
	want := "validation error: a: one; b: two"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

type refusedEntity struct {
	refused FieldErrors
}

func (e *refusedEntity) Refusals() *FieldErrors { return &e.refused }

func TestRefused(t *testing.T) {
	t.Parallel()

	e := &refusedEntity{}
	e.refused.Add("email", "has already signed this petition")
	e.refused.Add("name", "is reserved")

	tests := []struct {
		name   string
		fields []string
		want   []string
	}{
		{name: "every field", want: []string{"email", "name"}},
		{name: "named field", fields: []string{"email"}, want: []string{"email"}},
		{name: "field not refused", fields: []string{"postcode"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var errs FieldErrors
			Refused[*refusedEntity](tt.fields...)(e, &errs)
			if got := errs.Fields(); !slices.Equal(got, tt.want) && len(tt.want)+len(got) > 0 {
				t.Errorf("Fields() = %v, want %v", got, tt.want)
			}
		})
	}

	var none FieldErrors
	Refused[*refusedEntity]()(&refusedEntity{}, &none)
	if !none.Empty() {
		t.Errorf("Fields() = %v for an entity nothing refused", none.Fields())
	}
}
