package bucket

// Raw breakpoint tables. Each entry is the minimum pixel value of the
// fine bucket that starts there; the first bucket of a tier has no lower
// limit and the last has no upper limit. The tables are plain integers so
// that deriving Bucket values never forward-references another Bucket.
//
// Editing a table keeps the tier contiguous automatically: every maximum
// is computed with StepBelow, never written by hand.
var (
	widthSteps = []int{352, 384, 512, 864, 1024, 1216, 1440}

	// The height steps numerically match the handset/portable1 width
	// edges. This is a historical coupling between the tiers; it is kept
	// as a numeric coincidence, not a code-level reference.
	heightSteps = []int{512, 864}
)

// tier derives len(steps)+1 contiguous buckets from a breakpoint table.
// Buckets are built from the top down so that each maximum is StepBelow of
// its upper neighbor: no gaps, no overlaps, open-ended at both extremes.
func tier(axis Axis, steps []int) []Bucket {
	n := len(steps)
	buckets := make([]Bucket, n+1)
	buckets[n] = New(axis, Fixed(steps[n-1]), Unbounded)
	for i := n - 1; i >= 0; i-- {
		min := Unbounded
		if i > 0 {
			min = Fixed(steps[i-1])
		}
		buckets[i] = New(axis, min, StepBelow(buckets[i+1]))
	}
	return buckets
}

// Fine width tier.
var (
	widthFine = tier(Width, widthSteps)

	Handset1  = widthFine[0] // ..351
	Handset2  = widthFine[1] // 352..383
	Handset3  = widthFine[2] // 384..511
	Portable1 = widthFine[3] // 512..863
	Portable2 = widthFine[4] // 864..1023
	Portable3 = widthFine[5] // 1024..1215
	Wide1     = widthFine[6] // 1216..1439
	Wide2     = widthFine[7] // 1440..
)

// Broad width tier, derived from the fine tier so the two can never drift.
var (
	Handset  = Encompass(Width, Handset1, Handset3)
	Portable = Encompass(Width, Portable1, Portable3)
	Wide     = Encompass(Width, Wide1, Wide2)
)

// Height tier.
var (
	heightFine = tier(Height, heightSteps)

	Limited = heightFine[0] // ..511
	Medium  = heightFine[1] // 512..863
	Tall    = heightFine[2] // 864..
)

// Ordered tiers for classification. Each slice is ascending, mutually
// exclusive, and covers every non-negative pixel value.
var (
	WidthFineTier  = widthFine
	WidthBroadTier = []Bucket{Handset, Portable, Wide}
	HeightTier     = heightFine
)

var catalog = map[string]Bucket{
	"handset":   Handset,
	"portable":  Portable,
	"wide":      Wide,
	"handset1":  Handset1,
	"handset2":  Handset2,
	"handset3":  Handset3,
	"portable1": Portable1,
	"portable2": Portable2,
	"portable3": Portable3,
	"wide1":     Wide1,
	"wide2":     Wide2,
	"limited":   Limited,
	"medium":    Medium,
	"tall":      Tall,
}

// CatalogNames lists every named catalog bucket in display order.
var CatalogNames = []string{
	"handset", "portable", "wide",
	"handset1", "handset2", "handset3",
	"portable1", "portable2", "portable3",
	"wide1", "wide2",
	"limited", "medium", "tall",
}

// ByName looks up a catalog bucket by its lowercase name.
func ByName(name string) (Bucket, bool) {
	b, ok := catalog[name]
	return b, ok
}
