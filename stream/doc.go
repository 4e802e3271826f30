// Package stream drives the prepack transform over byte streams: the
// entropy-driven method selection scan, the commit encode pass, and the
// decode pass.
//
// # Passes
//
// Encoding is two passes over the input. The scan pass reads sparse samples
// of the stream, runs every candidate transform over each sampled block, and
// ranks candidates by the Shannon entropy of their residuals; the commit pass
// rewinds, writes the winning candidate index as a one-byte header, and
// transforms the whole stream with fresh filter state. Decoding is a single
// pass: read the header, look the candidate up by index, inverse-transform
// the remainder.
//
// # State discipline
//
// Every pass owns its filter and lane state outright, constructed fresh at
// pass start. During the scan each candidate additionally owns its own filter
// instance, so one candidate's history never leaks into another's histogram
// and repeated scans of the same input select the same index.
//
// Encoder and Decoder instances are single-use state machines and are not
// safe for concurrent use; distinct instances are fully independent.
package stream
