// 5 Oct 2026
// An error for when two sets of sequences are not what they should be.

package seqcmp

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
)

// Names of the checks, as they appear in MismatchError.Check.
const (
	CheckTaxa      = "taxa"
	CheckSequences = "sequences"
	CheckDataset   = "dataset"
	CheckConcat    = "concatenation"
	CheckGapColumn = "gap-column"
	CheckTreeTaxa  = "tree-taxa"
	CheckInOut     = "input-output" // the lists of inputs and outputs differ in length
)

// MismatchError says which check failed and what it was looking at.
// Multi-source checks compare everything against the first source, so
// Source is the index of the one that did not match.
type MismatchError struct {
	Check  string
	Source int    // index into the sources given to the check
	Name   string // sequence name, if the problem is in one sequence
	Column int    // alignment column, or -1
	Want   any
	Got    any
}

func (e *MismatchError) Error() string {
	switch {
	case e.Check == CheckInOut:
		return fmt.Sprintf("%s: %v inputs but %v outputs", e.Check, e.Want, e.Got)
	case e.Column >= 0:
		return fmt.Sprintf("%s: source %d column %d: gaps in %v", e.Check, e.Source, e.Column, e.Got)
	case e.Name != "":
		return fmt.Sprintf("%s: source %d sequence %q differs (-want +got):\n%s",
			e.Check, e.Source, e.Name, cmp.Diff(e.Want, e.Got))
	}
	return fmt.Sprintf("%s: source %d differs from source 0 (-want +got):\n%s",
		e.Check, e.Source, cmp.Diff(e.Want, e.Got))
}

func mismatch(check string, src int, want, got any) *MismatchError {
	return &MismatchError{Check: check, Source: src, Column: -1, Want: want, Got: got}
}
