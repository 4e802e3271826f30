package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/prepack/format"
	"github.com/arloliu/prepack/internal/options"
	"github.com/arloliu/prepack/internal/pool"
)

// Decoder reconstructs the original stream from a prepack encoding. Decoding
// is a single pass with no scan phase: the header byte alone determines the
// candidate, and the output is exactly one byte shorter than the input.
type Decoder struct {
	r   io.Reader
	cfg config
}

// NewDecoder creates a Decoder reading the encoded stream from r.
// WithBlockSize is the only option that affects decoding; candidate and
// stride settings are scan-pass concerns and are ignored here.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{r: r, cfg: cfg}, nil
}

// Decode reads the header byte, validates it against the candidate table,
// and streams the inverse transform of the remainder into w.
//
// Returns the candidate index recovered from the header. An empty input
// yields ErrMissingHeader; a header byte outside the candidate table yields
// ErrInvalidHeader. Read and write failures are terminal.
func (d *Decoder) Decode(w io.Writer) (int, error) {
	var hdr [format.HeaderSize]byte
	if _, err := io.ReadFull(d.r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, ErrMissingHeader
		}

		return 0, fmt.Errorf("stream: read header: %w", err)
	}

	idx := int(hdr[0])
	if !format.Valid(idx) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidHeader, idx)
	}

	t := newTransform(idx)

	block, cleanup := pool.GetBlock(d.cfg.blockSize)
	defer cleanup()

	for {
		n, rerr := io.ReadFull(d.r, block)
		if n > 0 {
			t.inverseBlock(block[:n])
			if _, werr := w.Write(block[:n]); werr != nil {
				return 0, fmt.Errorf("stream: write block: %w", werr)
			}
		}

		if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
			return idx, nil
		}
		if rerr != nil {
			return 0, fmt.Errorf("stream: read block: %w", rerr)
		}
	}
}
