package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenbuckets/bucket"
)

func TestFromBucket(t *testing.T) {
	tests := []struct {
		name string
		in   bucket.Bucket
		want []Feature
	}{
		{
			name: "fixed min and max",
			in:   bucket.New(bucket.Width, bucket.Fixed(512), bucket.Fixed(863)),
			want: []Feature{
				{Name: "min-width", Px: 512},
				{Name: "max-width", Px: 863},
			},
		},
		{
			name: "unbounded min",
			in:   bucket.New(bucket.Width, bucket.Unbounded, bucket.Fixed(511)),
			want: []Feature{{Name: "max-width", Px: 511}},
		},
		{
			name: "unbounded max",
			in:   bucket.New(bucket.Width, bucket.Fixed(1440), bucket.Unbounded),
			want: []Feature{{Name: "min-width", Px: 1440}},
		},
		{
			name: "height axis selects height features",
			in:   bucket.New(bucket.Height, bucket.Fixed(512), bucket.Fixed(863)),
			want: []Feature{
				{Name: "min-height", Px: 512},
				{Name: "max-height", Px: 863},
			},
		},
		{
			name: "degenerate fully unbounded",
			in:   bucket.New(bucket.Width, bucket.Unbounded, bucket.Unbounded),
			want: []Feature{{Name: "max-width", Px: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromBucket(tt.in).Features)
		})
	}
}

func TestQueryString(t *testing.T) {
	q := FromBucket(bucket.New(bucket.Width, bucket.Fixed(512), bucket.Fixed(863)))
	assert.Equal(t, "(min-width: 512px) and (max-width: 863px)", q.String())

	q = FromBucket(bucket.New(bucket.Width, bucket.Unbounded, bucket.Fixed(511)))
	assert.Equal(t, "(max-width: 511px)", q.String())

	q = FromBucket(bucket.New(bucket.Height, bucket.Fixed(864), bucket.Unbounded))
	assert.Equal(t, "(min-height: 864px)", q.String())
}

func TestCatalogQueries(t *testing.T) {
	q := FromBucket(bucket.Portable1)
	assert.Equal(t, "(min-width: 512px) and (max-width: 863px)", q.String())

	q = FromBucket(bucket.Handset)
	assert.Equal(t, "(max-width: 511px)", q.String())

	q = FromBucket(bucket.Tall)
	assert.Equal(t, "(min-height: 864px)", q.String())
}

func TestDeclarationString(t *testing.T) {
	d := Declaration{Property: "display", Value: "none"}
	assert.Equal(t, "display: none;", d.String())
}

func TestWithMedia(t *testing.T) {
	decls := []Declaration{
		{Property: "display", Value: "none"},
		{Property: "margin", Value: "0"},
	}

	r := WithMedia([]bucket.Bucket{bucket.Handset1, bucket.Limited}, decls)
	require.Len(t, r.Queries, 2)

	assert.Equal(t,
		"@media screen and (max-width: 351px), screen and (max-height: 511px) { display: none; margin: 0; }",
		r.String())
}

func TestWithMediaSingleBucket(t *testing.T) {
	r := WithMedia([]bucket.Bucket{bucket.Portable1}, []Declaration{{Property: "color", Value: "red"}})
	assert.Equal(t,
		"@media screen and (min-width: 512px) and (max-width: 863px) { color: red; }",
		r.String())
}

func TestFeaturePxFormatting(t *testing.T) {
	// Integer pixels convert 1:1 and render without a fraction.
	assert.Equal(t, "(min-width: 512px)", Feature{Name: "min-width", Px: 512}.String())
	assert.Equal(t, "(max-width: 0px)", Feature{Name: "max-width", Px: 0}.String())
}
