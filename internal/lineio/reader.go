// Package lineio reads markdown sources line by line and writes HTML fragments.
//
// The reader splits on '\n' and drops a '\r' directly preceding it, matching
// what line-oriented readers on common platforms produce. Lines are otherwise
// passed through untouched.
package lineio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// Sentinel errors for line I/O.
var (
	ErrOpenInput     = errors.New("failed to open input file")
	ErrCreateOutput  = errors.New("failed to create output file")
	ErrMalformedLine = errors.New("line is not valid UTF-8")
)

// Reader yields lines from an io.Reader one at a time.
type Reader struct {
	r    *bufio.Reader
	line int
	done bool
}

// NewReader wraps r in a line reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next line without its terminator.
// ok is false once the input is exhausted. A line that is not valid UTF-8
// returns ErrMalformedLine; reading should stop there.
func (r *Reader) Next() (line string, ok bool, err error) {
	if r.done {
		return "", false, nil
	}

	raw, err := r.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		r.done = true
		return "", false, fmt.Errorf("reading line %d: %w", r.line+1, err)
	}
	if errors.Is(err, io.EOF) {
		r.done = true
		// No trailing fragment after the last terminator
		if raw == "" {
			return "", false, nil
		}
	}

	r.line++
	if strings.HasSuffix(raw, "\n") {
		raw = strings.TrimSuffix(raw[:len(raw)-1], "\r")
	}

	if !utf8.ValidString(raw) {
		r.done = true
		return "", false, fmt.Errorf("%w: line %d", ErrMalformedLine, r.line)
	}

	return raw, true, nil
}

// ReadLines reads every line from r.
func ReadLines(r io.Reader) ([]string, error) {
	lr := NewReader(r)
	var lines []string
	for {
		line, ok, err := lr.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

// ReadFile opens path and reads every line.
// Open failures wrap both ErrOpenInput and the underlying os error.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenInput, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lines, nil
}
