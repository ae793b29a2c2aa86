// 7 Oct 2026

// Package seqtest wraps the checks in seqcmp so they can be used
// directly inside tests. Each function stops the test with t.Fatal if
// the property does not hold, or if a file could not be read.
package seqtest

import (
	"testing"

	"github.com/andrew-torda/alncheck/pkg/seq"
	"github.com/andrew-torda/alncheck/pkg/seqcmp"
)

func fatalIf(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// AssertSameTaxa fails unless all sources have the same names.
func AssertSameTaxa(t testing.TB, srcs ...seq.Source) {
	t.Helper()
	fatalIf(t, seqcmp.SameTaxa(srcs...))
}

// AssertSameSequences fails unless all sources have the same ungapped
// sequences, whatever they are called.
func AssertSameSequences(t testing.TB, srcs ...seq.Source) {
	t.Helper()
	fatalIf(t, seqcmp.SameSequences(srcs...))
}

// AssertSameDataset fails unless the sources have the same names with the
// same ungapped sequences.
func AssertSameDataset(t testing.TB, srcs ...seq.Source) {
	t.Helper()
	fatalIf(t, seqcmp.SameDataset(srcs...))
}

// AssertSameInputOutput compares inputs[i] with outputs[i].
func AssertSameInputOutput(t testing.TB, inputs, outputs []seq.Source) {
	t.Helper()
	fatalIf(t, seqcmp.SameInputOutput(inputs, outputs))
}

// AssertSameConcatenation fails unless result is the parts glued together.
func AssertSameConcatenation(t testing.TB, result seq.Source, parts ...seq.Source) {
	t.Helper()
	fatalIf(t, seqcmp.SameConcatenation(result, parts...))
}

// AssertNoGapColumns fails if any alignment has a column of only gaps.
func AssertNoGapColumns(t testing.TB, srcs ...seq.Source) {
	t.Helper()
	fatalIf(t, seqcmp.NoGapColumns(srcs...))
}
