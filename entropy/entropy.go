// Package entropy provides the per-candidate symbol histogram and the Shannon
// entropy estimate the method selector ranks candidates by.
package entropy

import "math"

// Histogram accumulates byte-value counts for one candidate during the scan
// pass. The zero value is ready to use.
type Histogram struct {
	counts [256]int64
	total  int64
}

// Observe counts one post-transform byte.
func (h *Histogram) Observe(b byte) {
	h.counts[b]++
	h.total++
}

// Total returns the number of bytes observed. For a sparse scan this is the
// sampled byte count, not the file length; probabilities are taken over what
// was actually seen.
func (h *Histogram) Total() int64 {
	return h.total
}

// Count returns the number of observations of symbol b.
func (h *Histogram) Count(b byte) int64 {
	return h.counts[b]
}

// Bits returns the Shannon entropy of the observed distribution in bits per
// symbol: the sum of -p*log2(p) over symbols with nonzero probability. An
// empty histogram has entropy 0.
func (h *Histogram) Bits() float64 {
	if h.total == 0 {
		return 0
	}

	total := float64(h.total)
	bits := 0.0
	for _, c := range h.counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		bits -= p * math.Log2(p)
	}

	return bits
}

// Reset zeroes all counts.
func (h *Histogram) Reset() {
	h.counts = [256]int64{}
	h.total = 0
}
