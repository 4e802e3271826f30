package stream

import "errors"

var (
	// ErrMissingHeader is returned when decoding an empty stream that lacks
	// the one-byte candidate header.
	ErrMissingHeader = errors.New("stream: missing candidate header")

	// ErrInvalidHeader is returned when the header byte holds an index
	// outside the candidate table. The original format left this unchecked;
	// here it is a decode error rather than undefined table indexing.
	ErrInvalidHeader = errors.New("stream: invalid candidate header")

	// ErrInvalidCandidate is returned when a caller pins an out-of-range
	// candidate index for encoding.
	ErrInvalidCandidate = errors.New("stream: invalid candidate index")
)
