package filter

import "github.com/arloliu/prepack/format"

const (
	// rateShift is the fixed learning-rate shift: the effective weight added
	// to each prediction is weight>>rateShift.
	rateShift = 6

	// weightLimit bounds the adapted weight, giving an effective prediction
	// offset of weightLimit>>rateShift = ±20.
	weightLimit = 1280
)

// Adaptive is the single-weight adaptive predictor. Each lane keeps its two
// most recent reconstructed values; the prediction is their linear
// extrapolation 2*sample1-sample2, refined by a weight shared across ALL
// lanes of the stream.
//
// The shared weight is a slow online bias corrector, not a least-squares
// filter: it moves by one unit of 2^-6 per byte in whichever direction
// reduces the residual bias, saturating at ±1280. Sharing it across lanes
// means interleaved lanes track a single global DC trend; that is part of the
// stream format and must not be made per-lane.
type Adaptive struct {
	sample1 [format.MaxChannels]byte
	sample2 [format.MaxChannels]byte
	weight  int32
}

// NewAdaptive creates an adaptive filter with zeroed history and weight,
// ready for a fresh pass.
func NewAdaptive() *Adaptive {
	return &Adaptive{}
}

// Forward consumes the next input byte on the given lane and returns the
// prediction residual.
func (f *Adaptive) Forward(b byte, lane int) byte {
	prediction := 2*f.sample1[lane] - f.sample2[lane]
	w := byte(f.weight >> rateShift)
	err := w + (prediction - b)

	f.updateWeight(err)
	f.sample2[lane] = f.sample1[lane]
	// Store a weight-refined reconstruction rather than the raw byte; this
	// slightly improves downstream compressibility and the decoder computes
	// the identical value from w and the recovered byte.
	f.sample1[lane] = w + b

	return err
}

// Inverse consumes the next residual on the given lane and returns the
// reconstructed input byte. It replays exactly the state updates Forward
// performed: the weight update depends only on the residual and the history
// update only on the recovered byte, so both sides stay in lockstep.
func (f *Adaptive) Inverse(err byte, lane int) byte {
	prediction := 2*f.sample1[lane] - f.sample2[lane]
	w := byte(f.weight >> rateShift)
	b := w + (prediction - err)

	f.updateWeight(err)
	f.sample2[lane] = f.sample1[lane]
	f.sample1[lane] = w + b

	return b
}

// updateWeight nudges the shared weight toward zero residual bias. Residuals
// are centered at 127: values below it mean the prediction ran low, values
// above it mean it ran high, and 127 itself is neutral.
func (f *Adaptive) updateWeight(err byte) {
	if err < 127 {
		f.weight++
	}
	if err > 127 {
		f.weight--
	}
	if f.weight == weightLimit+1 {
		f.weight--
	}
	if f.weight == -(weightLimit + 1) {
		f.weight++
	}
}

// Weight returns the current shared weight, bounded to [-1280, 1280].
func (f *Adaptive) Weight() int32 {
	return f.weight
}

// Reset zeroes all lane history and the shared weight, equivalent to
// constructing a new filter.
func (f *Adaptive) Reset() {
	f.sample1 = [format.MaxChannels]byte{}
	f.sample2 = [format.MaxChannels]byte{}
	f.weight = 0
}
