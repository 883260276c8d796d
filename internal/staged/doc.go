// Package staged implements multi-stage form journeys.
//
// A journey is a Sequence of named stages declared as an explicit transition
// table of Step rows. Each Stage wraps the journey's entity and validates
// only its own slice of it through an Object. Moving back is unconditional,
// moving next is gated by the current stage's validity, and the terminal
// stage is a fixed point.
//
// A Manager resolves the stage a request claims to come from, applies the
// requested Move and, once the terminal stage is reached, saves the entity.
// When the save fails validation it walks forward from the initial stage and
// settles on the first stage that does not validate.
//
// Everything here is request scoped and not safe for concurrent use.
package staged
