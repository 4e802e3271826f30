package filter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLane_Sequence(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		want     []int
	}{
		{"mono", 1, []int{0, 0, 0, 0}},
		{"stereo", 2, []int{1, 0, 1, 0, 1}},
		{"rgb", 3, []int{1, 2, 0, 1, 2, 0}},
		{"eight", 8, []int{1, 2, 3, 4, 5, 6, 7, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lane Lane
			for i, want := range tt.want {
				require.Equal(t, want, lane.Next(tt.channels), "call %d", i)
			}
		})
	}
}

func TestLane_Reset(t *testing.T) {
	var lane Lane
	lane.Next(3)
	lane.Next(3)

	lane.Reset()

	// After a reset the sequence restarts from the beginning.
	require.Equal(t, 1, lane.Next(3))
	require.Equal(t, 2, lane.Next(3))
	require.Equal(t, 0, lane.Next(3))
}

func TestLane_DeterministicAcrossRestarts(t *testing.T) {
	var a, b Lane
	first := make([]int, 16)
	for i := range first {
		first[i] = a.Next(5)
	}

	b.Next(5)
	b.Next(5)
	b.Reset()

	for i := range first {
		require.Equal(t, first[i], b.Next(5), "position %d", i)
	}
}
