package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroValue(t *testing.T) {
	m := New()
	assert.Equal(t, 0, m.Width)
	assert.Equal(t, 0, m.Height)
}

func TestFromInts(t *testing.T) {
	m := FromInts(1280, 800)
	assert.Equal(t, Metrics{Width: 1280, Height: 800}, m)
}

func TestFromFloatsRoundsUp(t *testing.T) {
	tests := []struct {
		name  string
		w, h  float64
		wantW int
		wantH int
	}{
		{"just over a breakpoint", 512.1, 800.0, 513, 800},
		{"just under a breakpoint", 511.9, 800.0, 512, 800},
		{"exact integers unchanged", 512.0, 864.0, 512, 864},
		{"ceiling, not nearest", 512.4, 800.2, 513, 801},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromFloats(tt.w, tt.h)
			assert.Equal(t, tt.wantW, m.Width)
			assert.Equal(t, tt.wantH, m.Height)
		})
	}
}

func TestUpdatesReplaceWholeValue(t *testing.T) {
	before := FromInts(1280, 800)
	after := FromInts(375, 667)

	// A resize yields a fresh value; the previous snapshot is untouched.
	assert.Equal(t, Metrics{Width: 1280, Height: 800}, before)
	assert.Equal(t, Metrics{Width: 375, Height: 667}, after)
}
