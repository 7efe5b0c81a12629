package federation

// Kind is the closed set of activity types the inbox dispatches on. Anything else is KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	KindCreate
	KindFollow
	KindUndo
)

func ParseKind(s string) Kind {
	switch s {
	case "Create":
		return KindCreate
	case "Follow":
		return KindFollow
	case "Undo":
		return KindUndo
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "Create"
	case KindFollow:
		return "Follow"
	case KindUndo:
		return "Undo"
	default:
		return "Unknown"
	}
}
