package stepper

// Mode describes how a parent constrains a child along one axis.
type Mode int

const (
	// Unspecified places no limit on the child.
	Unspecified Mode = iota
	// Exactly forces the child to the given size.
	Exactly
	// AtMost lets the child be as large as it wants up to the given size.
	AtMost
)

// String returns the string representation of a mode
func (m Mode) String() string {
	switch m {
	case Exactly:
		return "exactly"
	case AtMost:
		return "at-most"
	default:
		return "unspecified"
	}
}

// Constraint is a size limit along one axis, in cells.
type Constraint struct {
	Mode Mode
	Size int
}

// Exact returns a constraint that forces size n.
func Exact(n int) Constraint {
	return Constraint{Mode: Exactly, Size: n}
}

// UpTo returns a constraint that allows any size up to n.
func UpTo(n int) Constraint {
	return Constraint{Mode: AtMost, Size: n}
}

// Unbounded returns a constraint with no limit.
func Unbounded() Constraint {
	return Constraint{Mode: Unspecified}
}

// Dimension is a requested child size along one axis: a non-negative cell
// count, MatchParent or WrapContent.
type Dimension int

const (
	// MatchParent asks to be as large as the parent allows.
	MatchParent Dimension = -1
	// WrapContent asks to be just large enough for the content.
	WrapContent Dimension = -2
)

// ResolveSize reconciles a desired size with a constraint.
func ResolveSize(size int, c Constraint) int {
	switch c.Mode {
	case Exactly:
		return c.Size
	case AtMost:
		if c.Size < size {
			return c.Size
		}
		return size
	default:
		return size
	}
}

// ChildConstraint derives the constraint for a child from the parent's
// constraint, the space already used along that axis and the child's
// requested dimension.
func ChildConstraint(parent Constraint, used int, dim Dimension) Constraint {
	size := parent.Size - used
	if size < 0 {
		size = 0
	}

	if dim >= 0 {
		return Exact(int(dim))
	}

	switch parent.Mode {
	case Exactly:
		if dim == MatchParent {
			return Exact(size)
		}
		return UpTo(size)
	case AtMost:
		return UpTo(size)
	default:
		return Constraint{Mode: Unspecified, Size: size}
	}
}
