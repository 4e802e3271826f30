package stream

import (
	"github.com/arloliu/prepack/filter"
	"github.com/arloliu/prepack/format"
)

// transform binds one candidate to the lane router and filter state of a
// single pass. A fresh instance is equivalent to the reset-all-state step at
// a pass boundary.
type transform struct {
	cand     format.Candidate
	channels int
	lane     filter.Lane
	delta    *filter.Delta
	adaptive *filter.Adaptive
}

func newTransform(idx int) *transform {
	cand := format.Candidates[idx]
	t := &transform{
		cand:     cand,
		channels: int(cand.Channels),
	}

	switch cand.Family {
	case format.FamilyDelta:
		t.delta = filter.NewDelta()
	case format.FamilyAdaptive:
		t.adaptive = filter.NewAdaptive()
	case format.FamilyIdentity:
		// identity keeps no state
	}

	return t
}

// forward transforms one input byte into its residual.
func (t *transform) forward(b byte) byte {
	switch t.cand.Family {
	case format.FamilyDelta:
		return t.delta.Forward(b, t.lane.Next(t.channels))
	case format.FamilyAdaptive:
		return t.adaptive.Forward(b, t.lane.Next(t.channels))
	default:
		return b
	}
}

// inverse reconstructs one input byte from its residual.
func (t *transform) inverse(b byte) byte {
	switch t.cand.Family {
	case format.FamilyDelta:
		return t.delta.Inverse(b, t.lane.Next(t.channels))
	case format.FamilyAdaptive:
		return t.adaptive.Inverse(b, t.lane.Next(t.channels))
	default:
		return b
	}
}

// forwardBlock transforms block in place.
func (t *transform) forwardBlock(block []byte) {
	if t.cand.Family == format.FamilyIdentity {
		return
	}
	for i, b := range block {
		block[i] = t.forward(b)
	}
}

// inverseBlock reconstructs block in place.
func (t *transform) inverseBlock(block []byte) {
	if t.cand.Family == format.FamilyIdentity {
		return
	}
	for i, b := range block {
		block[i] = t.inverse(b)
	}
}
