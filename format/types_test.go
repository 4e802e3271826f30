package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidateTable_Layout(t *testing.T) {
	require.Len(t, Candidates, NumCandidates)

	// Index 0 is the unfiltered baseline.
	require.Equal(t, uint8(0), Candidates[0].Channels)
	require.Equal(t, FamilyIdentity, Candidates[0].Family)

	// Indices 1-9 are delta, 10-14 adaptive; the breakpoint splits them.
	for idx := 1; idx < Breakpoint; idx++ {
		require.Equal(t, FamilyDelta, Candidates[idx].Family, "index %d", idx)
	}
	for idx := Breakpoint; idx < NumCandidates; idx++ {
		require.Equal(t, FamilyAdaptive, Candidates[idx].Family, "index %d", idx)
	}
}

func TestCandidateTable_ChannelCounts(t *testing.T) {
	deltaChannels := []uint8{1, 2, 3, 4, 5, 6, 7, 8, 1}
	for i, want := range deltaChannels {
		require.Equal(t, want, Candidates[1+i].Channels, "delta index %d", 1+i)
	}

	adaptiveChannels := []uint8{2, 3, 4, 6, 8}
	for i, want := range adaptiveChannels {
		require.Equal(t, want, Candidates[Breakpoint+i].Channels, "adaptive index %d", Breakpoint+i)
	}

	// Index 9 intentionally repeats channel count 1; decode identity is by
	// index, so the duplicate must stay.
	require.Equal(t, Candidates[1].Channels, Candidates[9].Channels)

	for idx := 1; idx < NumCandidates; idx++ {
		require.LessOrEqual(t, Candidates[idx].Channels, uint8(MaxChannels))
		require.Greater(t, Candidates[idx].Channels, uint8(0))
	}
}

func TestValid(t *testing.T) {
	require.False(t, Valid(-1))
	require.True(t, Valid(0))
	require.True(t, Valid(NumCandidates-1))
	require.False(t, Valid(NumCandidates))
}

func TestFilterFamily_String(t *testing.T) {
	require.Equal(t, "Identity", FamilyIdentity.String())
	require.Equal(t, "Delta", FamilyDelta.String())
	require.Equal(t, "Adaptive", FamilyAdaptive.String())
	require.Equal(t, "Unknown", FilterFamily(9).String())
}
