package schedule

// EventKind tags how an event admits participants. Individual sessions are
// hard-capped at one participant no matter what capacity is stored.
type EventKind string

const (
	KindOpen       EventKind = "open"
	KindGroup      EventKind = "group"
	KindIndividual EventKind = "individual"
)

func (k EventKind) String() string {
	return string(k)
}

func (k EventKind) IsValid() bool {
	switch k {
	case KindOpen, KindGroup, KindIndividual:
		return true
	default:
		return false
	}
}
