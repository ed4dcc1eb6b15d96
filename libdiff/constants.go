package libdiff

// Op is the kind of a Change.
type Op int

const (
	Add Op = iota
	Remove
	Replace
)

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Replace:
		return "replace"
	}
	return "<unknown op>"
}

// Symbol is the one character prefix of Change.String.
func (o Op) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Remove:
		return "-"
	case Replace:
		return "~"
	}
	return "?"
}

// Inverse returns the op undoing o.
func (o Op) Inverse() Op {
	switch o {
	case Add:
		return Remove
	case Remove:
		return Add
	}
	return o
}
