// 29 Apr 2020
// 3 Oct 2026 gap characters for the alignment checks

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const (
	GapChar     byte = '-' // a minus sign is always used for gaps
	UnknownChar byte = '?' // unknown residue, treated like a gap when comparing
)

// IsGap says if c is dropped when comparing ungapped sequences.
// Only GapChar counts when looking for all-gap columns.
func IsGap(c byte) bool { return c == GapChar || c == UnknownChar }

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}
	defer f_tmp.Close()

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	return f_tmp.Name(), nil
}
