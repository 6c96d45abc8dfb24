package media

import (
	"strings"

	"screenbuckets/bucket"
)

// Declaration is one CSS declaration inside a guarded style block.
type Declaration struct {
	Property string
	Value    string
}

// String renders the declaration, e.g. "display: none;".
func (d Declaration) String() string {
	return d.Property + ": " + d.Value + ";"
}

// Rule is a declaration block guarded by one or more media queries.
// Multiple queries are alternatives: the block applies when any one of
// them matches, never as a conjunction.
type Rule struct {
	Queries      []Query
	Declarations []Declaration
}

// WithMedia guards a declaration block with the queries of the given
// buckets, one alternative per bucket.
func WithMedia(buckets []bucket.Bucket, decls []Declaration) Rule {
	queries := make([]Query, len(buckets))
	for i, b := range buckets {
		queries[i] = FromBucket(b)
	}
	return Rule{Queries: queries, Declarations: decls}
}

// String renders the rule as an @media block, e.g.
// "@media screen and (max-width: 351px), screen and (max-height: 511px) { display: none; }".
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString("@media ")
	if len(r.Queries) == 0 {
		sb.WriteString("screen")
	}
	for i, q := range r.Queries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("screen and ")
		sb.WriteString(q.String())
	}
	sb.WriteString(" { ")
	for i, d := range r.Declarations {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(d.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
