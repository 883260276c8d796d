package signature

// State is the confirmation state of a Signature.
type State string

const (
	StatePending   State = "pending"
	StateValidated State = "validated"
)

// IsValid returns true if the state is one of the defined constants.
func (s State) IsValid() bool {
	switch s {
	case StatePending, StateValidated:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}
