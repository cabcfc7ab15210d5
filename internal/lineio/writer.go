package lineio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// WriteFragments writes fragments to w verbatim and in order.
// Returns the number of bytes written.
func WriteFragments(w io.Writer, fragments []string) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, frag := range fragments {
		written, err := bw.WriteString(frag)
		n += int64(written)
		if err != nil {
			return n, err
		}
	}
	if err := bw.Flush(); err != nil {
		return n, err
	}
	return n, nil
}

// WriteFile creates or truncates path and writes fragments to it.
// An empty fragment list leaves a zero-byte file.
func WriteFile(path string, fragments []string) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions) // #nosec G304 -- output path derives from user input
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCreateOutput, err)
	}

	n, err := WriteFragments(f, fragments)
	if err != nil {
		_ = f.Close()
		return n, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("closing %s: %w", path, err)
	}
	return n, nil
}
