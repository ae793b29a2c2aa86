// 29 April 2020
// 8 Oct 2026 squash on a seq.Set, and by all-gap columns as well as by reference

// Package squash removes columns from a multiple sequence alignment.
// AllGap takes out the columns where every sequence has a gap. ByRef
// takes out the columns where some reference sequence has a gap.
package squash

import (
	"errors"
	"fmt"

	"github.com/andrew-torda/alncheck/pkg/seq"
	. "github.com/andrew-torda/alncheck/pkg/seq/common"
)

// ErrRagged is returned when the sequences are not all the same length,
// or there are none.
var ErrRagged = errors.New("sequences are not aligned")

// width checks all sequences have the same length and returns it.
func width(s seq.Set) (int, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("%w: no sequences", ErrRagged)
	}
	n := -1
	for name, b := range s {
		if n == -1 {
			n = len(b)
		} else if len(b) != n {
			return 0, fmt.Errorf("%w: %q has length %d, not %d", ErrRagged, name, len(b), n)
		}
	}
	return n, nil
}

// apply keeps the columns where mask is true.
func apply(s seq.Set, mask []bool) seq.Set {
	t := make(seq.Set, len(s))
	for name, b := range s {
		out := make([]byte, 0, len(b))
		for i := 0; i < len(b); i++ {
			if mask[i] {
				out = append(out, b[i])
			}
		}
		t[name] = string(out)
	}
	return t
}

// dropped lists the indexes where mask is false.
func dropped(mask []bool) []int {
	var cols []int
	for i, keep := range mask {
		if !keep {
			cols = append(cols, i)
		}
	}
	return cols
}

// AllGap returns a copy of s without the columns where every sequence
// has a gap, and the indexes of the columns it removed.
func AllGap(s seq.Set) (seq.Set, []int, error) {
	n, err := width(s)
	if err != nil {
		return nil, nil, err
	}
	mask := make([]bool, n)
	for _, b := range s {
		for i := 0; i < n; i++ {
			if b[i] != GapChar {
				mask[i] = true
			}
		}
	}
	return apply(s, mask), dropped(mask), nil
}

// ByRef returns a copy of s without the columns where the sequence
// called ref has a gap.
func ByRef(s seq.Set, ref string) (seq.Set, []int, error) {
	refseq, ok := s[ref]
	if !ok {
		return nil, nil, fmt.Errorf("could not find %q amongst sequences", ref)
	}
	if _, err := width(s); err != nil {
		return nil, nil, err
	}
	mask := make([]bool, len(refseq))
	for i := range mask {
		mask[i] = refseq[i] != GapChar
	}
	return apply(s, mask), dropped(mask), nil
}
