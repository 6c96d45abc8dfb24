package bucket

import "screenbuckets/screen"

// Classify returns the index of the first bucket in ordered that contains
// v, testing in ascending order. If no bucket matched by the time the last
// one is reached, the last index is returned unconditionally: the topmost
// bucket of a well-formed tier has an unbounded maximum, so the fallback
// only fires for a catalog edited into a gap, and classification stays
// exhaustive either way. ordered must be non-empty.
func Classify(v int, ordered []Bucket) int {
	last := len(ordered) - 1
	for i, b := range ordered[:last] {
		if b.Contains(v) {
			return i
		}
	}
	return last
}

// AnyContains reports whether the viewport falls inside at least one of the
// buckets. Each bucket is tested against its own axis, so the list may mix
// width and height buckets. An empty list matches nothing.
func AnyContains(buckets []Bucket, m screen.Metrics) bool {
	for _, b := range buckets {
		v := m.Width
		if b.Axis == Height {
			v = m.Height
		}
		if b.Contains(v) {
			return true
		}
	}
	return false
}

// BroadClass is the coarse 3-way width classification.
type BroadClass int

const (
	BroadHandset BroadClass = iota
	BroadPortable
	BroadWide
)

// String returns the catalog name of the broad class.
func (c BroadClass) String() string {
	switch c {
	case BroadHandset:
		return "handset"
	case BroadPortable:
		return "portable"
	case BroadWide:
		return "wide"
	default:
		return "unknown"
	}
}

// WidthClass is the fine 8-way width classification.
type WidthClass int

const (
	WidthHandset1 WidthClass = iota
	WidthHandset2
	WidthHandset3
	WidthPortable1
	WidthPortable2
	WidthPortable3
	WidthWide1
	WidthWide2
)

// String returns the catalog name of the fine width class.
func (c WidthClass) String() string {
	switch c {
	case WidthHandset1:
		return "handset1"
	case WidthHandset2:
		return "handset2"
	case WidthHandset3:
		return "handset3"
	case WidthPortable1:
		return "portable1"
	case WidthPortable2:
		return "portable2"
	case WidthPortable3:
		return "portable3"
	case WidthWide1:
		return "wide1"
	case WidthWide2:
		return "wide2"
	default:
		return "unknown"
	}
}

// HeightClass is the 3-way height classification.
type HeightClass int

const (
	HeightLimited HeightClass = iota
	HeightMedium
	HeightTall
)

// String returns the catalog name of the height class.
func (c HeightClass) String() string {
	switch c {
	case HeightLimited:
		return "limited"
	case HeightMedium:
		return "medium"
	case HeightTall:
		return "tall"
	default:
		return "unknown"
	}
}

// ClassifyBroad returns the broad class for a pixel width.
func ClassifyBroad(width int) BroadClass {
	return BroadClass(Classify(width, WidthBroadTier))
}

// ClassifyWidth returns the fine width class for a pixel width.
func ClassifyWidth(width int) WidthClass {
	return WidthClass(Classify(width, WidthFineTier))
}

// ClassifyHeight returns the height class for a pixel height.
func ClassifyHeight(height int) HeightClass {
	return HeightClass(Classify(height, HeightTier))
}
