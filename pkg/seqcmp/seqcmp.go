// 5 Oct 2026

// Package seqcmp checks what an alignment program did to its input.
// Each check takes sources, which are fasta files or sets already in
// memory, and returns nil if the property holds. Otherwise it returns a
// *MismatchError, or the *seq.ReadError if a file could not be read.
// Checks over several sources compare each one with the first and stop
// at the first difference.
package seqcmp

import (
	"slices"
	"sort"

	"github.com/andrew-torda/alncheck/pkg/seq"
)

// SameTaxa checks that all sources have the same sequence names.
// With fewer than two sources there is nothing to compare.
func SameTaxa(srcs ...seq.Source) error {
	if len(srcs) < 2 {
		return nil
	}
	first, err := seq.Parse(srcs[0])
	if err != nil {
		return err
	}
	for i := 1; i < len(srcs); i++ {
		s, err := seq.Parse(srcs[i])
		if err != nil {
			return err
		}
		if err := sameNames(first, s, i); err != nil {
			return err
		}
	}
	return nil
}

func sameNames(s1, s2 seq.Set, i int) error {
	want, got := s1.Names(), s2.Names()
	if !slices.Equal(want, got) {
		return mismatch(CheckTaxa, i, want, got)
	}
	return nil
}

// SameSequences checks that, once gaps are removed, all sources contain
// the same collection of sequences. Names are ignored, so two sequences
// swapped between taxa still pass. Use SameDataset if the names matter.
func SameSequences(srcs ...seq.Source) error {
	if len(srcs) == 0 {
		return nil
	}
	first, err := seq.Parse(srcs[0])
	if err != nil {
		return err
	}
	sd1 := seq.RemoveGaps(first)
	for i := 1; i < len(srcs); i++ {
		s, err := seq.Parse(srcs[i])
		if err != nil {
			return err
		}
		if err := sameBodies(sd1, seq.RemoveGaps(s), i); err != nil {
			return err
		}
	}
	return nil
}

func sameBodies(sd1, sd2 seq.Set, i int) error {
	want, got := sd1.Bodies(), sd2.Bodies()
	if !slices.Equal(want, got) {
		return mismatch(CheckSequences, i, want, got)
	}
	return nil
}

// SameDataset is the strict form of SameSequences. After gap removal,
// every source must have the same names, and each name must have the
// same sequence as in the first source.
func SameDataset(srcs ...seq.Source) error {
	if len(srcs) == 0 {
		return nil
	}
	first, err := seq.Parse(srcs[0])
	if err != nil {
		return err
	}
	sd1 := seq.RemoveGaps(first)
	for i := 1; i < len(srcs); i++ {
		s, err := seq.Parse(srcs[i])
		if err != nil {
			return err
		}
		sd2 := seq.RemoveGaps(s)
		if err := sameNames(sd1, sd2, i); err != nil {
			return err
		}
		if err := sameBodies(sd1, sd2, i); err != nil {
			return err
		}
		for _, name := range sd1.Names() {
			if sd1[name] != sd2[name] {
				e := mismatch(CheckDataset, i, sd1[name], sd2[name])
				e.Name = name
				return e
			}
		}
	}
	return nil
}

// SameInputOutput compares input i with output i using SameDataset.
// The lists must be the same length.
func SameInputOutput(inputs, outputs []seq.Source) error {
	if len(inputs) != len(outputs) {
		return mismatch(CheckInOut, 0, len(inputs), len(outputs))
	}
	for i := range inputs {
		if err := SameDataset(inputs[i], outputs[i]); err != nil {
			if e, ok := err.(*MismatchError); ok {
				e.Source = i
			}
			return err
		}
	}
	return nil
}

// sortParts puts sets that are already in memory first, in the order
// given, followed by files sorted by name.
func sortParts(parts []seq.Source) []seq.Source {
	sorted := slices.Clone(parts)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, iFile := sorted[i].Path()
		pj, jFile := sorted[j].Path()
		if iFile != jFile {
			return !iFile
		}
		return iFile && pi < pj
	})
	return sorted
}

// SameConcatenation checks that result holds the same sequences, gaps
// aside, as the parts glued together. Parts are glued in sorted order,
// name by name. A name missing from a part contributes nothing.
// The comparison ignores names, like SameSequences. On a mismatch the
// result is reported as source 1.
func SameConcatenation(result seq.Source, parts ...seq.Source) error {
	sets, err := seq.ParseAll(sortParts(parts))
	if err != nil {
		return err
	}
	out, err := seq.Parse(result)
	if err != nil {
		return err
	}
	want := seq.RemoveGaps(seq.Concat(sets...)).Bodies()
	got := seq.RemoveGaps(out).Bodies()
	if !slices.Equal(want, got) {
		return mismatch(CheckConcat, 1, want, got)
	}
	return nil
}

// NoGapColumns checks each alignment for columns made only of gaps.
func NoGapColumns(srcs ...seq.Source) error {
	for i, src := range srcs {
		s, err := seq.Parse(src)
		if err != nil {
			return err
		}
		if err := NewGapSet(s).Check(); err != nil {
			err.(*MismatchError).Source = i
			return err
		}
	}
	return nil
}
