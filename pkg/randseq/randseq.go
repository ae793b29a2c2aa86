// 31 July 2020
// 8 Oct 2026 make aligned sets for the alignment checks

// Package randseq makes random aligned sequences for testing.
// The same seed always gives the same sequences.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/andrew-torda/alncheck/pkg/seq"
	. "github.com/andrew-torda/alncheck/pkg/seq/common"
)

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed int64     // random number seed
	Wrtr  io.Writer // where we write to
	Cmmt  string    // Prefix for sequence names, "s" if empty
	Nseq  int       // number of sequences
	Len   int       // Length of sequences
	NoGap bool      // Do not add gaps
	MkErr bool      // Add an error, by changing a length
	Messy bool      // Break lines at random and pad them with blanks on output
}

var letters = []byte{'a', 'c', 'd', 'e', 'f', 'g',
	'h', 'i', 'k', 'l', 'm', 'n', 'p', 'q', 'r', 's', 't', 'v', 'w', 'y'}

// alphabet returns the symbols to draw from. With gaps, each letter is
// there four times and the gap once.
func alphabet(noGap bool) []byte {
	a := append([]byte(nil), letters...)
	if !noGap {
		a = append(a, a...)
		a = append(a, a...)
		a = append(a, GapChar)
	}
	return a
}

// getseq returns a string with a random upper case sequence in it
func getseq(seqlen int, alfbt []byte, rnd *rand.Rand) string {
	ret := make([]byte, seqlen)
	l := int32(len(alfbt))
	for i := range ret {
		ret[i] = alfbt[rnd.Int31n(l)]
	}
	return strings.ToUpper(string(ret))
}

// Alignment returns Nseq sequences of length Len. If MkErr is set, the
// last sequence is one shorter than the rest.
func Alignment(args *RandSeqArgs) seq.Set {
	base := args.Cmmt
	if base == "" {
		base = "s"
	}
	width := len(fmt.Sprintf("%d", args.Nseq))
	alfbt := alphabet(args.NoGap)
	rnd := rand.New(rand.NewSource(args.Iseed))
	set := make(seq.Set, args.Nseq)
	for i := 0; i < args.Nseq; i++ {
		s := getseq(args.Len, alfbt, rnd)
		if args.MkErr && i == args.Nseq-1 && len(s) > 0 {
			s = s[:len(s)-1]
		}
		set[fmt.Sprintf("%s%0*d", base, width, i+1)] = s
	}
	return set
}

// writeMessy writes in fasta format, but with lines of random length
// and blanks at either end of lines. The reader should not care.
func writeMessy(w io.Writer, set seq.Set, rnd *rand.Rand) error {
	for _, name := range set.Names() {
		if _, err := fmt.Fprintf(w, "%s>%s\n", strings.Repeat(" ", rnd.Intn(2)), name); err != nil {
			return err
		}
		s := set[name]
		for len(s) > 0 {
			n := 1 + rnd.Intn(80)
			if n > len(s) {
				n = len(s)
			}
			pad := strings.Repeat(" ", rnd.Intn(3))
			if _, err := fmt.Fprintf(w, "%s%s%s\n", pad, strings.ToLower(s[:n]), pad); err != nil {
				return err
			}
			s = s[n:]
		}
	}
	return nil
}

// RandSeqMain writes random sequences to an io.Writer.
func RandSeqMain(args *RandSeqArgs) error {
	if args.Wrtr == nil {
		return fmt.Errorf("randseq: no writer")
	}
	set := Alignment(args)
	if args.Messy {
		return writeMessy(args.Wrtr, set, rand.New(rand.NewSource(args.Iseed+1)))
	}
	return seq.Write(args.Wrtr, set, nil)
}
