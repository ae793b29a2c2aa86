// 31 July 2020

package randseq_test

import (
	"strings"
	"testing"

	. "github.com/andrew-torda/alncheck/pkg/randseq"
	"github.com/andrew-torda/alncheck/pkg/seq"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := RandSeqArgs{
		Wrtr: &sb,
		Cmmt: "testing seq",
		Nseq: 500,
		Len:  160,
	}
	if err := RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sb.String(), ">"); n != args.Nseq {
		t.Fatal("count >, got ", n, "expected", args.Nseq)
	}
}

func TestSeeded(t *testing.T) {
	args := RandSeqArgs{Iseed: 99, Nseq: 20, Len: 50}
	a, b := Alignment(&args), Alignment(&args)
	if !a.Equal(b) {
		t.Fatal("same seed gave different sequences")
	}
	args.Iseed++
	if c := Alignment(&args); c.Equal(a) {
		t.Fatal("different seed gave same sequences")
	}
}

func TestLengths(t *testing.T) {
	args := RandSeqArgs{Nseq: 9, Len: 30, NoGap: true}
	set := Alignment(&args)
	if len(set) != 9 {
		t.Fatal("got", len(set), "seqs, wanted 9")
	}
	for name, s := range set {
		if len(s) != 30 {
			t.Fatal(name, "has length", len(s))
		}
		if strings.ContainsRune(s, '-') {
			t.Fatal(name, "has a gap with NoGap set")
		}
	}
	args.MkErr = true
	set = Alignment(&args)
	if n := len(set["s9"]); n != 29 {
		t.Fatal("MkErr should shorten last seq, got length", n)
	}
}

// TestMessy writes with random line breaks and padding and checks the
// reader gets the same sequences back.
func TestMessy(t *testing.T) {
	var sb strings.Builder
	args := RandSeqArgs{Wrtr: &sb, Nseq: 30, Len: 333, Messy: true, Iseed: 7}
	if err := RandSeqMain(&args); err != nil {
		t.Fatal(err)
	}
	got, err := seq.ReadFasta(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	if want := Alignment(&args); !got.Equal(want) {
		t.Fatal("messy output did not read back")
	}
}

func TestNoWriter(t *testing.T) {
	if err := RandSeqMain(&RandSeqArgs{Nseq: 1, Len: 1}); err == nil {
		t.Fatal("no writer should be an error")
	}
}
