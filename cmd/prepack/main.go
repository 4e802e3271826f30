// Command prepack preprocesses interleaved sampled data so that downstream
// general-purpose compressors achieve better ratios.
//
// Usage:
//
//	prepack e [-stats] infile outfile    encode
//	prepack d infile outfile             decode
//	prepack v infile                     verify (in-memory round trip)
//
// Exit codes: 1 usage, 2 input unopenable, 3 output unopenable,
// 4 read error, 5 write error.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/arloliu/prepack"
	"github.com/arloliu/prepack/format"
	"github.com/arloliu/prepack/internal/hash"
	"github.com/arloliu/prepack/stream"
)

const (
	exitUsage = 1 + iota
	exitNoInput
	exitNoOutput
	exitReadError
	exitWriteError
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage: prepack e [-stats] infile outfile")
	fmt.Fprintln(os.Stderr, "       prepack d infile outfile")
	fmt.Fprintln(os.Stderr, "       prepack v infile")

	return exitUsage
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		return usage()
	}

	mode := args[0]
	rest := args[1:]

	stats := false
	if len(rest) > 0 && rest[0] == "-stats" {
		stats = true
		rest = rest[1:]
	}

	start := time.Now()
	var code int

	switch {
	case mode == "e" && len(rest) == 2:
		code = encode(rest[0], rest[1], stats)
	case mode == "d" && !stats && len(rest) == 2:
		code = decode(rest[0], rest[1])
	case mode == "v" && !stats && len(rest) == 1:
		code = verify(rest[0])
	default:
		return usage()
	}

	if code == 0 {
		fmt.Printf("took %s\n", time.Since(start).Round(time.Millisecond))
	}

	return code
}

func describe(idx int) string {
	cand := format.Candidates[idx]

	return fmt.Sprintf("candidate %d (%s, %d channels)", idx, cand.Family, cand.Channels)
}

// errWriter tags write failures so encode/decode can distinguish the read
// and write exit codes after a transform error.
type errWriter struct {
	w      io.Writer
	failed bool
}

func (ew *errWriter) Write(p []byte) (int, error) {
	n, err := ew.w.Write(p)
	if err != nil {
		ew.failed = true
	}

	return n, err
}

func encode(inPath, outPath string, stats bool) int {
	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "no input:", err)
		return exitNoInput
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "no output:", err)
		return exitNoOutput
	}
	defer out.Close()

	if stats {
		return encodeWithStats(in, out)
	}

	ew := &errWriter{w: out}
	idx, err := prepack.Encode(ew, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		if ew.failed {
			return exitWriteError
		}

		return exitReadError
	}

	fmt.Printf("encoded with %s\n", describe(idx))

	return 0
}

// encodeWithStats buffers the file so the gain report can compress raw and
// encoded streams side by side.
func encodeWithStats(in *os.File, out *os.File) int {
	raw, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		return exitReadError
	}

	encoded, idx, err := prepack.EncodeBytes(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		return exitReadError
	}

	if _, err := out.Write(encoded); err != nil {
		fmt.Fprintln(os.Stderr, "write error:", err)
		return exitWriteError
	}

	fmt.Printf("encoded with %s\n", describe(idx))

	report, err := stream.Report(raw, encoded)
	if err != nil {
		fmt.Fprintln(os.Stderr, "stats error:", err)
		return exitWriteError
	}
	for _, s := range report {
		fmt.Println(s)
	}

	return 0
}

func decode(inPath, outPath string) int {
	in, err := os.Open(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "no input:", err)
		return exitNoInput
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "no output:", err)
		return exitNoOutput
	}
	defer out.Close()

	ew := &errWriter{w: out}
	idx, err := prepack.Decode(ew, in)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode error:", err)
		if ew.failed {
			return exitWriteError
		}

		return exitReadError
	}

	fmt.Printf("decoded with %s\n", describe(idx))

	return 0
}

func verify(inPath string) int {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "no input:", err)
		return exitNoInput
	}

	encoded, idx, err := prepack.EncodeBytes(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		return exitReadError
	}

	restored, err := prepack.DecodeBytes(encoded)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode error:", err)
		return exitReadError
	}

	if hash.Sum(raw) != hash.Sum(restored) || !bytes.Equal(raw, restored) {
		fmt.Fprintln(os.Stderr, "verify failed: round trip mismatch")
		return exitReadError
	}

	fmt.Printf("verified %d bytes with %s\n", len(raw), describe(idx))

	return 0
}
