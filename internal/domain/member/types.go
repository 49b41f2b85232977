package member

// Kind collapses the source system's member hierarchy into a single tag;
// behavior never differs by kind beyond display labels and the optional
// fields carried alongside it.
type Kind string

const (
	KindStudent  Kind = "student"
	KindStaff    Kind = "staff"
	KindExternal Kind = "external"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindStudent, KindStaff, KindExternal:
		return true
	default:
		return false
	}
}
