package bucket

import "strconv"

// Boundary is one edge of a bucket: either an exact inclusive pixel value
// or unbounded ("no limit" on that side). An unbounded minimum means zero,
// an unbounded maximum means infinity. A Fixed minimum never represents
// zero — zero-as-minimum is always Unbounded.
type Boundary struct {
	px    int
	fixed bool
}

// Unbounded is the open edge: no lower limit when used as a minimum, no
// upper limit when used as a maximum.
var Unbounded = Boundary{}

// Fixed returns a boundary at an exact inclusive pixel value.
func Fixed(px int) Boundary {
	return Boundary{px: px, fixed: true}
}

// IsFixed reports whether the boundary is an exact pixel value.
func (b Boundary) IsFixed() bool {
	return b.fixed
}

// Px returns the pixel value of a fixed boundary, zero for Unbounded.
func (b Boundary) Px() int {
	return b.px
}

// String returns "512px" for fixed boundaries and "none" for Unbounded.
func (b Boundary) String() string {
	if !b.fixed {
		return "none"
	}
	return strconv.Itoa(b.px) + "px"
}
