// Package bucket classifies screen dimensions into a fixed set of named,
// contiguous pixel ranges.
package bucket

import "fmt"

// Axis identifies which screen dimension a bucket measures. It is always
// set explicitly on construction, never inferred.
type Axis int

const (
	Width Axis = iota
	Height
)

// String returns the CSS dimension name for the axis.
func (a Axis) String() string {
	switch a {
	case Width:
		return "width"
	case Height:
		return "height"
	default:
		return "unknown"
	}
}

// Bucket is a single contiguous, inclusive pixel range on one axis.
// Buckets are immutable values, built once as process-wide constants and
// never mutated.
type Bucket struct {
	Min  Boundary
	Max  Boundary
	Axis Axis
}

// New returns a bucket spanning min..max on the given axis. Panics if both
// edges are fixed and inverted; an inverted range would silently
// misclassify everything downstream.
func New(axis Axis, min, max Boundary) Bucket {
	if min.fixed && max.fixed && min.px > max.px {
		panic(fmt.Sprintf("bucket: inverted range %d..%d on %s", min.px, max.px, axis))
	}
	return Bucket{Min: min, Max: max, Axis: axis}
}

// Encompass returns a bucket spanning from low's minimum to high's maximum.
// It exists to build broad buckets from a contiguous run of fine buckets.
// Panics if either constituent measures a different axis.
func Encompass(axis Axis, low, high Bucket) Bucket {
	if low.Axis != axis || high.Axis != axis {
		panic(fmt.Sprintf("bucket: encompass mixes axes (%s, %s) on %s", low.Axis, high.Axis, axis))
	}
	return New(axis, low.Min, high.Max)
}

// StepBelow returns the boundary that ends a neighboring bucket exactly one
// pixel before b begins. An unbounded minimum propagates unchanged; there
// is no pixel below "no limit".
func StepBelow(b Bucket) Boundary {
	if !b.Min.fixed {
		return Unbounded
	}
	return Fixed(b.Min.px - 1)
}

// Contains reports whether a pixel value on the bucket's axis falls inside
// the bucket. Both edges are inclusive.
func (b Bucket) Contains(v int) bool {
	switch {
	case !b.Min.fixed && !b.Max.fixed:
		return true
	case !b.Min.fixed:
		return v <= b.Max.px
	case !b.Max.fixed:
		return v >= b.Min.px
	default:
		return v >= b.Min.px && v <= b.Max.px
	}
}
