package stream

import (
	"fmt"

	"github.com/arloliu/prepack/format"
	"github.com/arloliu/prepack/internal/options"
)

// config carries the sampling parameters of a pass. Only the header byte is
// persisted, so changing these affects scan cost and candidate choice but
// never decode compatibility.
type config struct {
	blockSize    int
	strideFactor int
	candidate    int // pinned candidate index, or -1 to scan
}

func defaultConfig() config {
	return config{
		blockSize:    format.BlockSize,
		strideFactor: format.StrideFactor,
		candidate:    -1,
	}
}

// Option configures the scan and commit passes.
type Option = options.Option[*config]

// WithBlockSize overrides the per-pass read block size (default 24576).
// Smaller blocks make the sparse scan sample more evenly on small inputs;
// the encoded output is unaffected.
func WithBlockSize(n int) Option {
	return options.New(func(c *config) error {
		if n <= 0 {
			return fmt.Errorf("stream: block size must be positive, got %d", n)
		}
		c.blockSize = n

		return nil
	})
}

// WithStrideFactor overrides the sparse-sampling stride multiplier (default
// 24). After each scanned block the selector skips blockSize*factor bytes
// when the skip still leaves data before EOF. A factor of 0 disables
// striding and scans every block.
func WithStrideFactor(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("stream: stride factor must not be negative, got %d", n)
		}
		c.strideFactor = n

		return nil
	})
}

// WithCandidate pins the candidate index, skipping the scan pass entirely.
func WithCandidate(idx int) Option {
	return options.New(func(c *config) error {
		if !format.Valid(idx) {
			return fmt.Errorf("%w: %d", ErrInvalidCandidate, idx)
		}
		c.candidate = idx

		return nil
	})
}
