package loan

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusOverdue  Status = "OVERDUE"
	StatusReturned Status = "RETURNED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusOverdue, StatusReturned:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the loan still has the item out.
func (s Status) IsOpen() bool {
	return s == StatusActive || s == StatusOverdue
}
