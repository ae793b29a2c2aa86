// 6 Oct 2026

package seqcmp

import (
	"sort"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/alncheck/pkg/seq"
	. "github.com/andrew-torda/alncheck/pkg/seq/common"
)

// GapSet records, for each column of an alignment, which sequences have
// a gap there. Only '-' counts. Columns without any gap are absent.
type GapSet struct {
	Taxa    []string         // all sequence names, sorted
	Columns map[int][]string // column -> sorted names with a gap there
	Width   int              // longest sequence
}

// NewGapSet walks over every sequence and notes where the gaps are.
func NewGapSet(s seq.Set) *GapSet {
	gs := &GapSet{
		Taxa:    s.Names(),
		Columns: make(map[int][]string),
		Width:   s.Width(),
	}
	for _, name := range gs.Taxa { // sorted names give sorted columns
		b := s[name]
		for i := 0; i < len(b); i++ {
			if b[i] == GapChar {
				gs.Columns[i] = append(gs.Columns[i], name)
			}
		}
	}
	return gs
}

// Cols returns the columns which have at least one gap, in order.
func (gs *GapSet) Cols() []int {
	cols := make([]int, 0, len(gs.Columns))
	for c := range gs.Columns {
		cols = append(cols, c)
	}
	sort.Ints(cols)
	return cols
}

// AllGap returns the columns in which every sequence has a gap.
func (gs *GapSet) AllGap() []int {
	var all []int
	for _, c := range gs.Cols() {
		if len(gs.Columns[c]) >= len(gs.Taxa) {
			all = append(all, c)
		}
	}
	return all
}

// Check makes sure the gap set is sane and that no column is made
// only of gaps. It stops at the first bad column.
// The returned error has Source 0. Callers with several sets fix it.
func (gs *GapSet) Check() error {
	cols := gs.Cols()
	for i := 1; i < len(cols); i++ {
		if cols[i] == cols[i-1] {
			return &MismatchError{Check: CheckGapColumn, Column: cols[i], Want: "unique column", Got: cols[i]}
		}
	}
	for _, c := range cols {
		names := gs.Columns[c]
		seen := make(map[string]bool, len(names))
		for _, name := range names {
			if seen[name] {
				return &MismatchError{Check: CheckGapColumn, Column: c, Name: name, Want: "one gap per sequence", Got: names}
			}
			seen[name] = true
		}
		if len(names) >= len(gs.Taxa) {
			return &MismatchError{Check: CheckGapColumn, Column: c, Want: len(gs.Taxa) - 1, Got: names}
		}
	}
	return nil
}

// Matrix returns an n_taxa x width matrix with 1 where there is a gap and
// 0 elsewhere. Rows are in the order of Taxa. A short sequence has no
// entries past its end, which counts as no gap.
func (gs *GapSet) Matrix() *matrix.FMatrix2d {
	row := make(map[string]int, len(gs.Taxa))
	for i, name := range gs.Taxa {
		row[name] = i
	}
	mat := matrix.NewFMatrix2d(len(gs.Taxa), gs.Width)
	for c, names := range gs.Columns {
		for _, name := range names {
			mat.Mat[row[name]][c] = 1
		}
	}
	return mat
}

// Fraction returns the fraction of sequences with a gap, per column.
func (gs *GapSet) Fraction() []float32 {
	frac := make([]float32, gs.Width)
	if len(gs.Taxa) == 0 {
		return frac
	}
	n := float32(len(gs.Taxa))
	for c, names := range gs.Columns {
		frac[c] = float32(len(names)) / n
	}
	return frac
}
