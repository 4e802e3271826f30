package compress

// ZstdCompressor provides Zstandard compression for gain measurement.
//
// Zstd is the reference point for the gain report: it is the codec most
// likely to sit downstream of the preprocessor in practice, and the one whose
// ratio responds most visibly to the decorrelation the transform performs.
//
// Two interchangeable backends exist, selected by build tag: the cgo-backed
// gozstd binding (libzstd) and the pure-Go klauspost implementation. Frame
// output differs byte-for-byte between backends but either decompresses the
// other's frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
