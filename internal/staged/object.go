package staged

import "github.com/jsamuelsen11/petitions-service/internal/domain"

// Object is a validation view over one slice of a journey's entity.
// Valid records failures on the entity's errors and has no other effect.
// Errors holds what the latest Valid call found, keyed as the entity keys
// them, and is empty until Valid runs.
type Object interface {
	Valid() bool
	Errors() *domain.FieldErrors
}

// Entity is anything carrying a validation error collection.
type Entity interface {
	Errors() *domain.FieldErrors
}

// check is an Object backed by a function that records failures in errs.
type check struct {
	run  func(errs *domain.FieldErrors)
	errs domain.FieldErrors
}

func (c *check) Valid() bool {
	c.errs = domain.FieldErrors{}
	c.run(&c.errs)
	return c.errs.Empty()
}

func (c *check) Errors() *domain.FieldErrors {
	return &c.errs
}

// Always returns an Object that is always valid.
func Always() Object {
	return &check{run: func(*domain.FieldErrors) {}}
}

// Validate returns an Object applying rules to target. Validity reflects only
// the failures found by that call; earlier errors on target are kept.
func Validate[T Entity](target T, rules ...domain.Rule[T]) Object {
	return &check{run: func(errs *domain.FieldErrors) {
		for _, rule := range rules {
			rule(target, errs)
		}
		target.Errors().Merge(errs)
	}}
}

// Nested returns an Object applying rules to child, a sub-entity of parent.
// Failures are recorded on child and copied onto parent under
// "prefix.field", which is also how the Object reports them. A nil child
// fails with prefix itself as the field.
func Nested[C any, PC interface {
	*C
	Entity
}](parent Entity, prefix string, child PC, rules ...domain.Rule[PC]) Object {
	return &check{run: func(errs *domain.FieldErrors) {
		var own domain.FieldErrors
		if child == nil {
			own.Add("", domain.MsgRequired)
		} else {
			for _, rule := range rules {
				rule(child, &own)
			}
			child.Errors().Merge(&own)
		}
		errs.Merge(domain.Propagate(nil, &own, prefix))
		parent.Errors().Merge(errs)
	}}
}

// All returns an Object that is valid when every object is. Every object is
// evaluated so each records its failures.
func All(objects ...Object) Object {
	return &check{run: func(errs *domain.FieldErrors) {
		for _, o := range objects {
			o.Valid()
			errs.Merge(o.Errors())
		}
	}}
}
