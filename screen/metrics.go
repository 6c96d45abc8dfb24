// Package screen holds the host application's current viewport snapshot.
package screen

import "math"

// Metrics is a snapshot of the viewport dimensions in pixels. The zero
// value is an all-zero viewport, the state before the first resize event.
//
// Metrics is replaced wholesale on every resize: the constructors return a
// new value instead of mutating fields one at a time, so a concurrent
// reader can never observe the width of one resize paired with the height
// of another.
type Metrics struct {
	Width  int
	Height int
}

// New returns a zeroed snapshot.
func New() Metrics {
	return Metrics{}
}

// FromInts returns a new snapshot from integer pixel dimensions.
func FromInts(width, height int) Metrics {
	return Metrics{Width: width, Height: height}
}

// FromFloats returns a new snapshot from fractional pixel dimensions.
// Fractions round up (ceiling), never to nearest and never down.
func FromFloats(width, height float64) Metrics {
	return Metrics{
		Width:  int(math.Ceil(width)),
		Height: int(math.Ceil(height)),
	}
}
