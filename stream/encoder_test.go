package stream

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/arloliu/prepack/format"
	"github.com/stretchr/testify/require"
)

func TestEncoder_ScanThenCommit(t *testing.T) {
	data := randomWalk(2, 60000, 4)

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	idx, err := enc.Encode(bytes.NewReader(data))
	require.NoError(t, err)
	require.True(t, format.Valid(idx))
	require.NotEqual(t, 0, idx)
	require.Equal(t, len(data)+format.HeaderSize, buf.Len())
	require.Equal(t, byte(idx), buf.Bytes()[0])

	restored, gotIdx := decode(t, buf.Bytes())
	require.Equal(t, idx, gotIdx)
	require.Equal(t, data, restored)
}

func TestEncoder_PinnedCandidateSkipsScan(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, WithCandidate(2))
	require.NoError(t, err)

	idx, err := enc.Encode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 2, idx)

	// Pinned output matches the direct commit path.
	require.Equal(t, encodeWith(t, data, 2), buf.Bytes())
}

func TestEncoder_PixelScenario(t *testing.T) {
	// 3-byte-per-pixel image with near-constant channels: a delta candidate
	// with three channels wins and residuals after the first triple are all
	// zero, so the payload ends almost entirely flat.
	data := repeatPattern([]byte{10, 20, 30}, 3*500)

	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	idx, err := enc.Encode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, format.FamilyDelta, format.Candidates[idx].Family)
	require.Equal(t, uint8(3), format.Candidates[idx].Channels)

	payload := buf.Bytes()[format.HeaderSize:]
	for i := 3; i < len(payload); i++ {
		require.Equal(t, byte(0), payload[i], "residual at %d", i)
	}

	restored, _ := decode(t, buf.Bytes())
	require.Equal(t, data, restored)
}

func TestEncoder_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	idx, err := enc.Encode(bytes.NewReader(nil))
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.Equal(t, []byte{0}, buf.Bytes())

	restored, _ := decode(t, buf.Bytes())
	require.Empty(t, restored)
}

type failingWriter struct {
	allow int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allow <= 0 {
		return 0, errors.New("disk full")
	}
	w.allow--

	return len(p), nil
}

func TestEncoder_WriteErrorIsTerminal(t *testing.T) {
	data := make([]byte, 4096)
	rand.New(rand.NewSource(8)).Read(data)

	enc, err := NewEncoder(&failingWriter{allow: 0})
	require.NoError(t, err)
	err = enc.EncodeWithCandidate(bytes.NewReader(data), 1)
	require.ErrorContains(t, err, "write header")

	enc, err = NewEncoder(&failingWriter{allow: 1})
	require.NoError(t, err)
	err = enc.EncodeWithCandidate(bytes.NewReader(data), 1)
	require.ErrorContains(t, err, "write block")
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("bad sector")
}

func TestEncoder_ReadErrorIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	err = enc.EncodeWithCandidate(failingReader{}, 1)
	require.ErrorContains(t, err, "read block")
}

func TestDecoder_WriteErrorIsTerminal(t *testing.T) {
	encoded := encodeWith(t, make([]byte, 4096), 1)

	dec, err := NewDecoder(bytes.NewReader(encoded))
	require.NoError(t, err)
	_, err = dec.Decode(&failingWriter{allow: 0})
	require.ErrorContains(t, err, "write block")
}

func BenchmarkEncoder_Commit(b *testing.B) {
	data := randomWalk(2, 1<<20, 9)

	for _, idx := range []int{2, 10} {
		name := format.Candidates[idx].Family.String()
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				enc, _ := NewEncoder(&buf)
				if err := enc.EncodeWithCandidate(bytes.NewReader(data), idx); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
