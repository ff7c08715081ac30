package entities

// ItemStatus is the three-state sufficiency verdict for a supply item
type ItemStatus int

const (
	StatusOK ItemStatus = iota
	StatusWarning
	StatusCritical
)

// String method for ItemStatus enum
func (s ItemStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusWarning:
		return "warning"
	case StatusCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Worse returns the more severe of the two statuses
func (s ItemStatus) Worse(other ItemStatus) ItemStatus {
	if other > s {
		return other
	}
	return s
}
