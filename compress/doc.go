// Package compress provides the general-purpose codecs prepack uses to
// measure how much a transform improved downstream compressibility.
//
// The preprocessor itself performs no compression: its output is the header
// byte plus the transformed stream, nothing else. These codecs exist for the
// gain report and for tests, which compress the original and the transformed
// stream side by side and compare sizes. That comparison is the honest way to
// judge whether the selected candidate actually helped the compressor that
// will eventually consume the data.
//
// # Codecs
//
//	codec := compress.NewZstdCompressor() // best ratio, moderate speed
//	codec := compress.NewS2Compressor()   // balanced
//	codec := compress.NewLZ4Compressor()  // fastest
//	codec := compress.NewNoOpCompressor() // raw-size baseline
//
// All implement the Codec interface:
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Zstd has two backends selected at build time: the cgo-backed gozstd binding
// when cgo is available, and the pure-Go klauspost implementation otherwise.
// Both produce interchangeable Zstandard frames.
//
// Codec instances are stateless values, safe for concurrent use; internal
// encoder state is pooled per call.
package compress
