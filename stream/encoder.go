package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/prepack/format"
	"github.com/arloliu/prepack/internal/options"
	"github.com/arloliu/prepack/internal/pool"
)

// Encoder writes the prepack encoding of an input stream: a one-byte header
// holding the selected candidate index followed by the transformed bytes,
// identical in length to the input.
//
// An Encoder is a single-pass state machine; encode one stream per instance
// and do not share instances across goroutines.
type Encoder struct {
	w   io.Writer
	cfg config
}

// NewEncoder creates an Encoder writing to w.
//
// Parameters:
//   - w: destination for the header and transformed stream
//   - opts: WithBlockSize, WithStrideFactor, WithCandidate
//
// Returns:
//   - *Encoder: ready to encode
//   - error: option validation failure
func NewEncoder(w io.Writer, opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{w: w, cfg: cfg}, nil
}

// Encode selects the best candidate for r and commits the full transform.
//
// Unless a candidate was pinned with WithCandidate, Encode first runs the
// sparse scan pass over r, then rewinds and performs the commit pass with
// freshly reset filter state: the header byte followed by every input byte
// routed through the selected transform. The identity candidate copies the
// stream unchanged.
//
// Returns the index of the candidate that was written to the header. Any
// read, seek or write failure is terminal; no partial-output cleanup is
// attempted beyond what the caller's resource lifecycle provides.
func (e *Encoder) Encode(r io.ReadSeeker) (int, error) {
	idx := e.cfg.candidate
	if idx < 0 {
		var err error
		if idx, _, err = scan(r, e.cfg); err != nil {
			return 0, err
		}
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf("stream: rewind for commit: %w", err)
	}

	if err := e.commit(r, idx); err != nil {
		return 0, err
	}

	return idx, nil
}

// EncodeWithCandidate commits the transform for a specific candidate index,
// skipping the scan. The input only needs to be readable, not seekable.
func (e *Encoder) EncodeWithCandidate(r io.Reader, idx int) error {
	if !format.Valid(idx) {
		return fmt.Errorf("%w: %d", ErrInvalidCandidate, idx)
	}

	return e.commit(r, idx)
}

// commit writes the header byte and streams the forward transform of r,
// block by block, with pass-fresh filter state.
func (e *Encoder) commit(r io.Reader, idx int) error {
	if _, err := e.w.Write([]byte{byte(idx)}); err != nil {
		return fmt.Errorf("stream: write header: %w", err)
	}

	t := newTransform(idx)

	block, cleanup := pool.GetBlock(e.cfg.blockSize)
	defer cleanup()

	for {
		n, rerr := io.ReadFull(r, block)
		if n > 0 {
			t.forwardBlock(block[:n])
			if _, werr := e.w.Write(block[:n]); werr != nil {
				return fmt.Errorf("stream: write block: %w", werr)
			}
		}

		if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("stream: read block: %w", rerr)
		}
	}
}
