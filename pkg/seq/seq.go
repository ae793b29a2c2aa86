// 20 Dec 2017
// 2 Oct 2026 rewritten around a map of sequences for the alignment checks

// Package seq reads sequences, which usually begin their lives in
// fasta format, into a Set keyed by sequence name. It can remove gaps,
// concatenate sets and write them back out.
//
// A set is built once from a Source and then only read. Everything
// that changes a set, like RemoveGaps, returns a new one.
package seq

import (
	"sort"
	"strings"
)

// Set maps a sequence name (everything after the ">") to its residues.
// Residues are upper case. Gaps are kept.
type Set map[string]string

// Names returns the sequence names in sorted order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Bodies returns the sequences themselves, sorted, without names.
func (s Set) Bodies() []string {
	bodies := make([]string, 0, len(s))
	for _, b := range s {
		bodies = append(bodies, b)
	}
	sort.Strings(bodies)
	return bodies
}

// Copy returns a new set with the same contents.
func (s Set) Copy() Set {
	t := make(Set, len(s))
	for name, b := range s {
		t[name] = b
	}
	return t
}

// Equal says if two sets have the same names with the same sequences.
func (s Set) Equal(t Set) bool {
	if len(s) != len(t) {
		return false
	}
	for name, b := range s {
		if c, ok := t[name]; !ok || c != b {
			return false
		}
	}
	return true
}

// Width returns the length of the longest sequence. For an alignment,
// this is the number of columns.
func (s Set) Width() int {
	w := 0
	for _, b := range s {
		if len(b) > w {
			w = len(b)
		}
	}
	return w
}

// srcKind marks what a Source holds.
type srcKind byte

const (
	srcPath   srcKind = iota // a fasta file to be read
	srcParsed                // a set we already have
)

// Source is either the name of a fasta file or a set that has
// already been read. Callers can hand either to the comparison
// functions.
type Source struct {
	kind srcKind
	path string
	set  Set
}

// FromPath returns a Source which will be read from a file.
// "-" means standard input.
func FromPath(path string) Source { return Source{kind: srcPath, path: path} }

// FromSet returns a Source wrapping a set that is already in memory.
func FromSet(s Set) Source { return Source{kind: srcParsed, set: s} }

// FromPaths is a convenience for the common case of several files.
func FromPaths(paths ...string) []Source {
	srcs := make([]Source, len(paths))
	for i, p := range paths {
		srcs[i] = FromPath(p)
	}
	return srcs
}

// Path returns the file name and true for a file source.
func (src Source) Path() (string, bool) { return src.path, src.kind == srcPath }

// String is used in error messages.
func (src Source) String() string {
	if src.kind == srcPath {
		return src.path
	}
	return "<" + strings.Join(src.set.Names(), ",") + ">"
}

// Parse turns a Source into a Set. A set that is already parsed is
// handed back unchanged, so Parse can be applied any number of times.
func Parse(src Source) (Set, error) {
	switch src.kind {
	case srcParsed:
		if src.set == nil {
			return Set{}, nil
		}
		return src.set, nil
	default:
		return Readfile(src.path)
	}
}

// ParseAll parses each source in turn and stops at the first error.
func ParseAll(srcs []Source) ([]Set, error) {
	sets := make([]Set, len(srcs))
	for i, src := range srcs {
		s, err := Parse(src)
		if err != nil {
			return nil, err
		}
		sets[i] = s
	}
	return sets, nil
}
