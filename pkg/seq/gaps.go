// 3 Oct 2026

package seq

import (
	"strings"

	. "github.com/andrew-torda/alncheck/pkg/seq/common"
)

// ungap returns s without gap or unknown characters.
func ungap(s string) string {
	n := 0
	for i := 0; i < len(s); i++ { // count first, so the common case
		if !IsGap(s[i]) { //        of no gaps costs nothing
			n++
		}
	}
	if n == len(s) {
		return s
	}
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < len(s); i++ {
		if !IsGap(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// RemoveGaps returns a new set with '-' and '?' taken out of every
// sequence. Sequences which are left empty are dropped.
// The original set is not touched.
func RemoveGaps(s Set) Set {
	t := make(Set, len(s))
	for name, b := range s {
		if u := ungap(b); u != "" {
			t[name] = u
		}
	}
	return t
}

// Concat glues sets together, name by name, in the order given.
// A name missing from one of the sets contributes nothing from that set,
// but it is still present in the result.
func Concat(sets ...Set) Set {
	bldr := make(map[string]*strings.Builder)
	for _, s := range sets {
		for name := range s {
			if bldr[name] == nil {
				bldr[name] = new(strings.Builder)
			}
		}
	}
	for _, s := range sets {
		for name, b := range bldr {
			b.WriteString(s[name])
		}
	}
	t := make(Set, len(bldr))
	for name, b := range bldr {
		t[name] = b.String()
	}
	return t
}
