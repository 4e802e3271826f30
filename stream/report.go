package stream

import (
	"fmt"

	"github.com/arloliu/prepack/compress"
)

// GainStat reports how one general-purpose codec responded to the transform:
// the compressed size of the raw input versus the compressed size of the
// prepack-encoded stream (header included).
type GainStat struct {
	Codec          string
	RawSize        int
	RawCompressed  int
	PrepCompressed int
}

// Gain returns the fractional size reduction the transform bought under this
// codec: positive when preprocessing helped, negative when it hurt.
func (s GainStat) Gain() float64 {
	if s.RawCompressed == 0 {
		return 0
	}

	return 1 - float64(s.PrepCompressed)/float64(s.RawCompressed)
}

func (s GainStat) String() string {
	return fmt.Sprintf("%-4s raw %d -> %d, prepacked -> %d (gain %+.2f%%)",
		s.Codec, s.RawSize, s.RawCompressed, s.PrepCompressed, s.Gain()*100)
}

// Report measures downstream compressibility gain: it compresses the raw
// input and the prepack-encoded stream with each codec (zstd, s2, lz4) and
// returns the sizes side by side.
//
// This is measurement only; nothing here touches the encoded stream, which
// always remains header byte plus transformed bytes.
func Report(raw, encoded []byte) ([]GainStat, error) {
	stats := make([]GainStat, 0, 3)
	for _, nc := range compress.Codecs() {
		rawOut, err := nc.Codec.Compress(raw)
		if err != nil {
			return nil, fmt.Errorf("stream: compress raw with %s: %w", nc.Name, err)
		}
		prepOut, err := nc.Codec.Compress(encoded)
		if err != nil {
			return nil, fmt.Errorf("stream: compress encoded with %s: %w", nc.Name, err)
		}

		stats = append(stats, GainStat{
			Codec:          nc.Name,
			RawSize:        len(raw),
			RawCompressed:  storedSize(len(rawOut), len(raw)),
			PrepCompressed: storedSize(len(prepOut), len(encoded)),
		})
	}

	return stats, nil
}

// storedSize maps a codec's output size to the size one would actually
// store: block codecs like lz4 signal incompressible input with an empty
// result, in which case the data would be kept raw.
func storedSize(compressed, original int) int {
	if compressed == 0 && original > 0 {
		return original
	}

	return compressed
}
