package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/prepack/entropy"
	"github.com/arloliu/prepack/format"
	"github.com/arloliu/prepack/internal/options"
	"github.com/arloliu/prepack/internal/pool"
)

// Select runs the scan pass: it samples r in blocks, routes every sampled
// byte through all 15 candidate transforms, and returns the index of the
// candidate whose residuals have the lowest Shannon entropy, together with
// the per-candidate entropy estimates in bits per symbol.
//
// When r is an io.Seeker, large inputs are sampled sparsely: after each
// block the selector skips ahead by blockSize*strideFactor bytes as long as
// the skip still leaves data before EOF. Non-seekable readers are scanned in
// full. Entropy probabilities are taken over the bytes actually sampled.
//
// Ties break toward the lowest index, so repeated scans of the same input
// with the same options always select the same candidate. Select leaves r
// positioned wherever the scan stopped; callers that encode afterwards must
// rewind.
//
// Parameters:
//   - r: input stream to sample; seekable inputs are rewound to the start
//   - opts: WithBlockSize and WithStrideFactor override sampling parameters
//
// Returns:
//   - int: index of the minimum-entropy candidate (first minimum on ties)
//   - [15]float64: entropy estimate per candidate
//   - error: read or seek failure; both are terminal for the scan
func Select(r io.Reader, opts ...Option) (int, [format.NumCandidates]float64, error) {
	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return 0, [format.NumCandidates]float64{}, err
	}

	return scan(r, cfg)
}

func scan(r io.Reader, cfg config) (int, [format.NumCandidates]float64, error) {
	var (
		bits  [format.NumCandidates]float64
		hists [format.NumCandidates]entropy.Histogram
	)

	// One transform per candidate for the whole scan: lane counters start at
	// zero per candidate and filter history stays continuous across blocks
	// of the same candidate.
	var transforms [format.NumCandidates]*transform
	for idx := range transforms {
		transforms[idx] = newTransform(idx)
	}

	seeker, seekable := r.(io.Seeker)
	var size, pos int64
	if seekable {
		var err error
		if size, err = seeker.Seek(0, io.SeekEnd); err != nil {
			return 0, bits, fmt.Errorf("stream: seek to end: %w", err)
		}
		if pos, err = seeker.Seek(0, io.SeekStart); err != nil {
			return 0, bits, fmt.Errorf("stream: rewind: %w", err)
		}
	}

	block, cleanup := pool.GetBlock(cfg.blockSize)
	defer cleanup()

	stride := int64(cfg.blockSize) * int64(cfg.strideFactor)

	for {
		n, rerr := io.ReadFull(r, block)
		if n > 0 {
			for idx := range transforms {
				t := transforms[idx]
				h := &hists[idx]
				if t.cand.Family == format.FamilyIdentity {
					for _, b := range block[:n] {
						h.Observe(b)
					}
				} else {
					for _, b := range block[:n] {
						h.Observe(t.forward(b))
					}
				}
			}
			pos += int64(n)
		}

		if errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF) {
			break
		}
		if rerr != nil {
			return 0, bits, fmt.Errorf("stream: read block: %w", rerr)
		}

		// Sparse stride: skip ahead only when the skip leaves data to read.
		if seekable && stride > 0 && pos+stride < size {
			if _, err := seeker.Seek(stride, io.SeekCurrent); err != nil {
				return 0, bits, fmt.Errorf("stream: stride: %w", err)
			}
			pos += stride
		}
	}

	best := 0
	for idx := range hists {
		bits[idx] = hists[idx].Bits()
		if bits[idx] < bits[best] {
			best = idx
		}
	}

	return best, bits, nil
}
