// Package prepack provides a reversible byte-stream preprocessor that
// improves the downstream compressibility of interleaved multi-channel
// sampled data, such as multi-channel audio frames or multi-component pixel
// data.
//
// Prepack is not a compressor: it performs no entropy coding. It applies a
// lossless linear transform, chosen per stream by a sampled entropy scan,
// that removes short-range correlation so a general-purpose compressor
// (zstd, s2, lz4, ...) consuming the output achieves a better ratio than it
// would on the raw stream.
//
// # Core Features
//
//   - 15 candidate transforms: an identity baseline, per-lane delta filtering
//     for 1-8 interleaved channels, and an adaptive single-weight predictor
//     for 2-8 channels
//   - Entropy-driven selection over a sparse sample of the input, so large
//     files are scanned in bounded time
//   - Exactly one byte of metadata: the selected candidate index
//   - Bit-exact round trip for any input, any candidate
//
// # Basic Usage
//
// Encoding and decoding files:
//
//	import "github.com/arloliu/prepack"
//
//	in, _ := os.Open("frames.raw")
//	out, _ := os.Create("frames.pre")
//	idx, err := prepack.Encode(out, in)
//	// idx is the selected candidate; the output is 1 byte longer than the input
//
//	enc, _ := os.Open("frames.pre")
//	orig, _ := os.Create("frames.out")
//	_, err = prepack.Decode(orig, enc)
//
// In-memory round trip:
//
//	encoded, idx, _ := prepack.EncodeBytes(data)
//	restored, _ := prepack.DecodeBytes(encoded)
//
// # Package Structure
//
// This package wraps the stream package, which drives the scan and commit
// passes. The filter package holds the per-byte transforms, entropy the
// estimator the selector ranks candidates by, format the candidate table and
// stream constants, and compress the codecs used to measure gain.
package prepack

import (
	"bytes"
	"io"

	"github.com/arloliu/prepack/stream"
)

// EncodeOption configures the encode passes; see stream.WithBlockSize,
// stream.WithStrideFactor and stream.WithCandidate.
type EncodeOption = stream.Option

// Encode scans src for the minimum-entropy candidate transform, then writes
// the one-byte header and the transformed stream to dst. The written stream
// is exactly one byte longer than the input.
//
// src must be seekable because encoding is two passes: the sparse scan and
// the full commit. Use EncodeBytes for in-memory data.
//
// Returns the selected candidate index.
func Encode(dst io.Writer, src io.ReadSeeker, opts ...EncodeOption) (int, error) {
	enc, err := stream.NewEncoder(dst, opts...)
	if err != nil {
		return 0, err
	}

	return enc.Encode(src)
}

// Decode reconstructs the original stream from the prepack encoding in src
// and writes it to dst. Returns the candidate index recovered from the
// header.
func Decode(dst io.Writer, src io.Reader) (int, error) {
	dec, err := stream.NewDecoder(src)
	if err != nil {
		return 0, err
	}

	return dec.Decode(dst)
}

// EncodeBytes encodes in-memory data, returning the encoded stream (one byte
// longer than data) and the selected candidate index.
func EncodeBytes(data []byte, opts ...EncodeOption) ([]byte, int, error) {
	var buf bytes.Buffer
	buf.Grow(len(data) + 1)

	idx, err := Encode(&buf, bytes.NewReader(data), opts...)
	if err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), idx, nil
}

// DecodeBytes decodes an in-memory prepack stream produced by EncodeBytes or
// Encode.
func DecodeBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if len(data) > 0 {
		buf.Grow(len(data) - 1)
	}

	if _, err := Decode(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
