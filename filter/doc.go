// Package filter implements the reversible per-byte transforms of the prepack
// stream: the interleave lane router, the fixed delta filter, and the adaptive
// single-weight predictor.
//
// # Overview
//
// Interleaved sampled data (stereo audio frames, RGB pixel triples) correlates
// strongly within a lane but weakly across adjacent bytes. The filters here
// remove that short-range correlation by predicting each byte from earlier
// bytes on the same lane and emitting only the residual, which a downstream
// general-purpose compressor handles far better than the raw stream.
//
// Two filter families are provided:
//
//   - Delta: first difference against the previous byte on the lane. Cheap and
//     effective for smooth data such as image planes.
//   - Adaptive: second-order linear extrapolation refined by a single shared
//     weight that adapts online, one step per byte. Better for audio-like data
//     with a drifting DC trend.
//
// # Reversibility
//
// All arithmetic is unsigned 8-bit with modulo-256 wraparound, which Go's byte
// type provides natively. Every forward step updates its history only from
// values the inverse step can recover (the residual and the reconstructed
// byte), so encoder and decoder state trajectories are bit-identical and the
// transform is exactly invertible for any input.
//
// # State discipline
//
// Delta, Adaptive and Lane are plain state objects with no hidden package
// state. Construct a fresh instance (or call Reset) at the start of every
// pass; instances are not safe for concurrent use.
package filter
