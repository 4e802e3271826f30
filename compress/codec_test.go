package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// Compressible payload: short runs over a long period, easy for both
	// match-based and entropy-based codecs.
	data := make([]byte, 64*1024)
	for i := range data {
		data[i] = byte((i / 8) % 251)
	}

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	data := testPayload()

	for _, nc := range Codecs() {
		t.Run(nc.Name, func(t *testing.T) {
			compressed, err := nc.Codec.Compress(data)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)
			require.Less(t, len(compressed), len(data), "payload should compress")

			restored, err := nc.Codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(data, restored))
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, nc := range Codecs() {
		t.Run(nc.Name, func(t *testing.T) {
			compressed, err := nc.Codec.Compress(nil)
			require.NoError(t, err)

			restored, err := nc.Codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestNoOp_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	back, err := codec.Decompress(out)
	require.NoError(t, err)
	require.Equal(t, data, back)
}

func TestZstd_DecompressCorrupted(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.Error(t, err)
}

func BenchmarkCodecs_Compress(b *testing.B) {
	data := testPayload()
	for _, nc := range Codecs() {
		b.Run(nc.Name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				_, err := nc.Codec.Compress(data)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
