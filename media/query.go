// Package media projects buckets into CSS media-query conditions and
// renders them as @media rules.
package media

import (
	"strconv"
	"strings"

	"screenbuckets/bucket"
)

// Feature is a single dimension constraint inside a media query, e.g.
// "min-width: 512px". Px is a float because stylesheet pixel values are
// fractional; integer bucket edges convert 1:1 with no unit conversion.
type Feature struct {
	Name string
	Px   float64
}

// String renders the feature in parentheses, e.g. "(min-width: 512px)".
func (f Feature) String() string {
	return "(" + f.Name + ": " + formatPx(f.Px) + ")"
}

// Query is a conjunction of features guarding one bucket.
type Query struct {
	Features []Feature
}

// FromBucket projects a bucket into the media query matching exactly the
// viewports the bucket contains. A fixed edge becomes a min-* or max-*
// feature on the bucket's axis; an unbounded edge emits nothing. The
// fully unbounded case degenerates to "max-<dim>: 0"; no catalog bucket
// has both ends open, so the only contract there is a non-crashing value.
func FromBucket(b bucket.Bucket) Query {
	dim := b.Axis.String()
	switch {
	case !b.Min.IsFixed() && b.Max.IsFixed():
		return Query{Features: []Feature{
			{Name: "max-" + dim, Px: float64(b.Max.Px())},
		}}
	case !b.Min.IsFixed() && !b.Max.IsFixed():
		return Query{Features: []Feature{
			{Name: "max-" + dim, Px: 0},
		}}
	case b.Min.IsFixed() && b.Max.IsFixed():
		return Query{Features: []Feature{
			{Name: "min-" + dim, Px: float64(b.Min.Px())},
			{Name: "max-" + dim, Px: float64(b.Max.Px())},
		}}
	default:
		return Query{Features: []Feature{
			{Name: "min-" + dim, Px: float64(b.Min.Px())},
		}}
	}
}

// String renders the feature conjunction, e.g.
// "(min-width: 512px) and (max-width: 863px)".
func (q Query) String() string {
	parts := make([]string, len(q.Features))
	for i, f := range q.Features {
		parts[i] = f.String()
	}
	return strings.Join(parts, " and ")
}

func formatPx(px float64) string {
	return strconv.FormatFloat(px, 'f', -1, 64) + "px"
}
