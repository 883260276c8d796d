package petition

// State is the lifecycle state of a Petition.
type State string

const (
	StatePending   State = "pending"
	StateValidated State = "validated"
	StateSponsored State = "sponsored"
	StateOpen      State = "open"
	StateClosed    State = "closed"
	StateRejected  State = "rejected"
)

// IsValid returns true if the state is one of the defined constants.
func (s State) IsValid() bool {
	switch s {
	case StatePending, StateValidated, StateSponsored, StateOpen, StateClosed, StateRejected:
		return true
	default:
		return false
	}
}

// Moderatable reports whether a petition in this state still awaits a
// moderation decision.
func (s State) Moderatable() bool {
	switch s {
	case StatePending, StateValidated, StateSponsored:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// Decision is a moderator's verdict on a sponsored petition.
type Decision string

const (
	DecisionPublish Decision = "publish"
	DecisionReject  Decision = "reject"
)

// IsValid returns true if the decision is one of the defined constants.
func (d Decision) IsValid() bool {
	return d == DecisionPublish || d == DecisionReject
}
