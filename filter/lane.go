package filter

// Lane routes a running byte position to one of up to 8 interleave lanes.
//
// It is a synthetic modulo counter: each call to Next increments the counter,
// wraps it to zero when it reaches the channel count, and returns the new
// value, so a pass over n-channel data yields the lane sequence
// 1,2,...,n-1,0,1,2,... Starting at lane 1 rather than 0 is part of the
// stream format; both directions of the transform use the same sequence, so
// the offset cancels out.
type Lane struct {
	d int
}

// Next advances the counter for a stream with the given channel count and
// returns the lane index of the current byte. channels must be in [1,8].
func (l *Lane) Next(channels int) int {
	l.d++
	if l.d == channels {
		l.d = 0
	}

	return l.d
}

// Reset rewinds the counter to the start-of-pass position. It must be called
// between candidates during a scan and at the start of every commit or decode
// pass so lane assignment is position-independent.
func (l *Lane) Reset() {
	l.d = 0
}
