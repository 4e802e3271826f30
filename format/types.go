// Package format defines the on-disk constants of the prepack stream format:
// the candidate table, the filter family enumeration, and the block and
// sampling parameters shared by the scan and commit passes.
//
// The format is deliberately tiny. The only persisted metadata is a single
// header byte holding the index of the winning candidate; everything else is
// reconstructed from the candidate table, which therefore must never be
// reordered or deduplicated. Decode identity is by index, not by channel
// count, so the apparent duplicate at index 9 (channel count 1, same as
// index 1) is part of the format.
package format

// FilterFamily identifies which transform a candidate applies to each byte.
type FilterFamily uint8

const (
	FamilyIdentity FilterFamily = 0 // FamilyIdentity passes bytes through unchanged.
	FamilyDelta    FilterFamily = 1 // FamilyDelta applies the per-lane first-difference filter.
	FamilyAdaptive FilterFamily = 2 // FamilyAdaptive applies the single-weight adaptive predictor.
)

func (f FilterFamily) String() string {
	switch f {
	case FamilyIdentity:
		return "Identity"
	case FamilyDelta:
		return "Delta"
	case FamilyAdaptive:
		return "Adaptive"
	default:
		return "Unknown"
	}
}

const (
	// BlockSize is the number of bytes read per block in both the scan and
	// commit passes.
	BlockSize = 24576

	// StrideFactor is the sparse-sampling stride of the scan pass: after a
	// block has been scanned for all candidates, the selector skips ahead by
	// BlockSize*StrideFactor bytes when that still leaves data before EOF.
	StrideFactor = 24

	// NumCandidates is the number of entries in the candidate table, and the
	// exclusive upper bound of a valid header byte.
	NumCandidates = 15

	// Breakpoint is the first candidate index of the adaptive family.
	// Indices below it are identity (0) or delta (1-9).
	Breakpoint = 10

	// MaxChannels is the largest interleave lane count any candidate uses.
	MaxChannels = 8

	// HeaderSize is the size of the stream header: one byte holding the
	// selected candidate index.
	HeaderSize = 1
)

// Candidate is one fixed (channel count, filter family) configuration
// considered during selection. Channels is 0 only for the identity candidate.
type Candidate struct {
	Channels uint8
	Family   FilterFamily
}

// Candidates is the fixed candidate table. Index 0 is the unfiltered
// baseline, indices 1-9 are delta candidates with channel counts
// 1,2,3,4,5,6,7,8,1, and indices 10-14 are adaptive candidates with channel
// counts 2,3,4,6,8.
var Candidates = [NumCandidates]Candidate{
	{Channels: 0, Family: FamilyIdentity},
	{Channels: 1, Family: FamilyDelta},
	{Channels: 2, Family: FamilyDelta},
	{Channels: 3, Family: FamilyDelta},
	{Channels: 4, Family: FamilyDelta},
	{Channels: 5, Family: FamilyDelta},
	{Channels: 6, Family: FamilyDelta},
	{Channels: 7, Family: FamilyDelta},
	{Channels: 8, Family: FamilyDelta},
	{Channels: 1, Family: FamilyDelta},
	{Channels: 2, Family: FamilyAdaptive},
	{Channels: 3, Family: FamilyAdaptive},
	{Channels: 4, Family: FamilyAdaptive},
	{Channels: 6, Family: FamilyAdaptive},
	{Channels: 8, Family: FamilyAdaptive},
}

// Valid reports whether idx is a legal candidate index, i.e. a legal value
// for the stream header byte.
func Valid(idx int) bool {
	return idx >= 0 && idx < NumCandidates
}
