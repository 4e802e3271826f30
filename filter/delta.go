package filter

import "github.com/arloliu/prepack/format"

// Delta is the fixed first-difference filter. Each lane keeps the previous
// byte seen on that lane; the residual is the modulo-256 difference between
// that history byte and the current byte.
//
// A constant lane produces a zero residual after its first byte, which is
// what makes delta-filtered interleaved data so compressible downstream.
type Delta struct {
	previous [format.MaxChannels]byte
}

// NewDelta creates a delta filter with zeroed lane history, ready for a
// fresh pass.
func NewDelta() *Delta {
	return &Delta{}
}

// Forward consumes the next input byte on the given lane and returns its
// residual.
func (f *Delta) Forward(b byte, lane int) byte {
	delta := f.previous[lane] - b
	f.previous[lane] = b

	return delta
}

// Inverse consumes the next residual on the given lane and returns the
// reconstructed input byte.
func (f *Delta) Inverse(delta byte, lane int) byte {
	b := f.previous[lane] - delta
	f.previous[lane] = b

	return b
}

// Reset zeroes all lane history, equivalent to constructing a new filter.
func (f *Delta) Reset() {
	f.previous = [format.MaxChannels]byte{}
}
