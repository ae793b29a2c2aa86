// 10 Oct 2026

// Package treecheck compares the leaves of a Newick tree with the names
// in an alignment. A pipeline which builds a tree from an alignment
// should not lose or rename sequences on the way.
package treecheck

import (
	"fmt"
	"os"
	"slices"
	"sort"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"

	"github.com/andrew-torda/alncheck/pkg/seq"
	"github.com/andrew-torda/alncheck/pkg/seqcmp"
)

// ReadTree reads the first tree from a Newick file.
func ReadTree(fname string) (*tree.Tree, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	t, err := newick.NewParser(fp).Parse()
	if err != nil {
		return nil, fmt.Errorf("parsing tree in %s: %w", fname, err)
	}
	return t, nil
}

// TipNames returns the names on the leaves, sorted.
func TipNames(t *tree.Tree) []string {
	tips := t.Tips()
	names := make([]string, len(tips))
	for i, n := range tips {
		names[i] = n.Name()
	}
	sort.Strings(names)
	return names
}

// SameTaxa reads the tree and the alignment and fails unless the leaves
// and the sequence names are the same. Source 0 is the alignment and
// source 1 the tree.
func SameTaxa(treePath string, aln seq.Source) error {
	t, err := ReadTree(treePath)
	if err != nil {
		return err
	}
	s, err := seq.Parse(aln)
	if err != nil {
		return err
	}
	if want, got := s.Names(), TipNames(t); !slices.Equal(want, got) {
		return &seqcmp.MismatchError{Check: seqcmp.CheckTreeTaxa, Source: 1, Column: -1, Want: want, Got: got}
	}
	return nil
}
