package entropy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogram_Empty(t *testing.T) {
	var h Histogram
	require.Equal(t, int64(0), h.Total())
	require.Equal(t, 0.0, h.Bits())
}

func TestHistogram_SingleSymbol(t *testing.T) {
	var h Histogram
	for i := 0; i < 1000; i++ {
		h.Observe(0x42)
	}

	require.Equal(t, int64(1000), h.Total())
	require.Equal(t, int64(1000), h.Count(0x42))
	require.Equal(t, 0.0, h.Bits())
}

func TestHistogram_UniformDistribution(t *testing.T) {
	tests := []struct {
		name    string
		symbols int
	}{
		{"two symbols", 2},
		{"four symbols", 4},
		{"sixteen symbols", 16},
		{"all symbols", 256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h Histogram
			for s := 0; s < tt.symbols; s++ {
				for i := 0; i < 10; i++ {
					h.Observe(byte(s))
				}
			}

			want := math.Log2(float64(tt.symbols))
			require.InDelta(t, want, h.Bits(), 1e-12)
		})
	}
}

func TestHistogram_SkewedBeatsUniform(t *testing.T) {
	var skewed, uniform Histogram
	for i := 0; i < 256; i++ {
		uniform.Observe(byte(i))
	}
	for i := 0; i < 240; i++ {
		skewed.Observe(0)
	}
	for i := 0; i < 16; i++ {
		skewed.Observe(byte(i))
	}

	require.Less(t, skewed.Bits(), uniform.Bits())
}

func TestHistogram_Reset(t *testing.T) {
	var h Histogram
	h.Observe(1)
	h.Observe(2)

	h.Reset()

	require.Equal(t, int64(0), h.Total())
	require.Equal(t, int64(0), h.Count(1))
	require.Equal(t, 0.0, h.Bits())
}
