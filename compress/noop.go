package compress

// NoOpCompressor bypasses data without compression. It is not part of the
// gain report's codec set; it exists for tests and callers that want to
// exercise the Codec interface without paying for compression.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without processing or copying.
// The returned slice shares the input's memory.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
// The returned slice shares the input's memory.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
