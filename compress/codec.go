package compress

// Compressor compresses a complete in-memory payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor. It validates the input framing and returns an error for
// corrupted or incompatible data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions; all codecs in this package implement it.
type Codec interface {
	Compressor
	Decompressor
}

// Named pairs a codec with the name the gain report prints for it.
type Named struct {
	Name  string
	Codec Codec
}

// Codecs returns the codecs the gain report measures with, in report order.
func Codecs() []Named {
	return []Named{
		{Name: "zstd", Codec: NewZstdCompressor()},
		{Name: "s2", Codec: NewS2Compressor()},
		{Name: "lz4", Codec: NewLZ4Compressor()},
	}
}
