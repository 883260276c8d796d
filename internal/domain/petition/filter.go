package petition

import "time"

// DefaultListLimit caps list results when Filter.Limit is unset.
const DefaultListLimit = 50

// Filter holds optional filter criteria for listing petitions.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	State          State
	DeadlineBefore *time.Time
	Limit          int
}

// Matches reports whether p satisfies every set criterion. Limit is ignored.
func (f Filter) Matches(p *Petition) bool {
	if f.State != "" && p.State != f.State {
		return false
	}
	if f.DeadlineBefore != nil {
		if p.Deadline == nil || !p.Deadline.Before(*f.DeadlineBefore) {
			return false
		}
	}
	return true
}

// EffectiveLimit returns Limit, or DefaultListLimit when Limit is not positive.
func (f Filter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultListLimit
	}
	return f.Limit
}
