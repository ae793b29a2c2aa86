package seq_test

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/alncheck/pkg/brokenio"
	. "github.com/andrew-torda/alncheck/pkg/seq"
	"github.com/andrew-torda/alncheck/pkg/seq/common"
)

func readStr(t *testing.T, s string) Set {
	t.Helper()
	set, err := ReadFasta(strings.NewReader(s))
	if err != nil {
		t.Fatal("reading", s, err)
	}
	return set
}

func TestReadFasta(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Set
	}{
		{"simple", ">A\nACGT\n>B\nAC-GT\n", Set{"A": "ACGT", "B": "AC-GT"}},
		{"lower case", ">A\nacgt\n>B\nac-gt", Set{"A": "ACGT", "B": "AC-GT"}},
		{"multi line", ">A\nAC\n  GT \n\nNN\n>B\n?-", Set{"A": "ACGTNN", "B": "?-"}},
		{"no final newline", ">A\nAC", Set{"A": "AC"}},
		{"empty body", ">A\n>B\nAC\n", Set{"A": "", "B": "AC"}},
		{"empty last body", ">A\nAC\n>B\n", Set{"A": "AC", "B": ""}},
		{"no name dropped", ">\nAAA\n>B\nC\n", Set{"B": "C"}},
		{"junk before first", "rubbish\nmore\n>A\nC\n", Set{"A": "C"}},
		{"name kept verbatim", "> s1 homo sapiens \nA\n", Set{" s1 homo sapiens": "A"}},
		{"indented header", "  >A\nA\n", Set{"A": "A"}},
		{"last name wins", ">A\nAA\n>A\nCC\n", Set{"A": "CC"}},
		{"crlf", ">A\r\nAC\r\nGT\r\n", Set{"A": "ACGT"}},
		{"nothing", "", Set{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readStr(t, tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("ReadFasta mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestLongLine has a sequence much longer than any read buffer.
// TestUpperBytes checks that only ASCII letters change case and that
// nothing changes length.
func TestUpperBytes(t *testing.T) {
	s := readStr(t, ">a\nac\xffß-g\n")
	if got, want := s["a"], "AC\xffß-G"; got != want {
		t.Fatalf("got %q wanted %q", got, want)
	}
}

func TestLongLine(t *testing.T) {
	const n = 200 * 1024
	s := ">long\n" + strings.Repeat("a", n) + "\n>short\nc"
	set := readStr(t, s)
	if len(set["long"]) != n {
		t.Fatal("long seq got", len(set["long"]), "want", n)
	}
	if set["short"] != "C" {
		t.Fatal("short seq got", set["short"])
	}
}

func TestParseIdempotent(t *testing.T) {
	set := Set{"A": "AC-GT", "B": "GG"}
	once, err := Parse(FromSet(set))
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Parse(FromSet(once))
	if err != nil {
		t.Fatal(err)
	}
	if !once.Equal(set) || !twice.Equal(once) {
		t.Fatal("parse changed a parsed set", set, once, twice)
	}
	if empty, _ := Parse(FromSet(nil)); empty == nil || len(empty) != 0 {
		t.Fatal("nil set should parse to empty set, got", empty)
	}
}

func TestReadfile(t *testing.T) {
	fname, err := common.WrtTemp(">A\nACGT\n>B\nac-gt\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	got, err := Parse(FromPath(fname))
	if err != nil {
		t.Fatal("reading temp file", err)
	}
	want := Set{"A": "ACGT", "B": "AC-GT"}
	if !got.Equal(want) {
		t.Fatal("got", got, "wanted", want)
	}
	again, err := Parse(FromSet(got))
	if err != nil || !again.Equal(got) {
		t.Fatal("parse of parsed file changed it", again, err)
	}
}

func TestReadfileEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	set, err := Readfile(fname)
	if err != nil {
		t.Fatal("empty file should not be an error", err)
	}
	if len(set) != 0 {
		t.Fatal("empty file gave", set)
	}
}

func TestReadfileMissing(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "not_there.fa")
	_, err := Parse(FromPath(fname))
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatal("missing file should give a ReadError, got", err)
	}
	if rerr.Path != fname {
		t.Fatal("ReadError path got", rerr.Path, "wanted", fname)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatal("ReadError should wrap fs.ErrNotExist", err)
	}
}

// TestBrokenReader checks that a read failure half way through is
// passed back, not turned into a short set of sequences.
func TestBrokenReader(t *testing.T) {
	s := ">A\n" + strings.Repeat("ACGT", 1000) + "\n>B\nAC\n"
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(s)))
	rdr.SetFailAfter(len(s) / 2)
	set, err := ReadFasta(rdr)
	if err == nil {
		t.Fatal("broken reader gave no error, set has", len(set), "seqs")
	}
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Fatal("wrong error", err)
	}
	var rerr *ReadError
	if !errors.As(err, &rerr) {
		t.Fatal("want ReadError, got", err)
	}
}

func TestRemoveGaps(t *testing.T) {
	in := Set{"A": "AC-GT", "B": "----", "C": "?A?", "D": ""}
	got := RemoveGaps(in)
	want := Set{"A": "ACGT", "C": "A"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("RemoveGaps (-want +got):\n%s", diff)
	}
	if in["A"] != "AC-GT" || len(in) != 4 {
		t.Fatal("RemoveGaps changed its input", in)
	}
}

func TestConcat(t *testing.T) {
	a := Set{"A": "AC", "B": "G-"}
	b := Set{"A": "GT", "C": "TT"}
	got := Concat(a, b)
	want := Set{"A": "ACGT", "B": "G-", "C": "TT"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Concat (-want +got):\n%s", diff)
	}
	if len(Concat()) != 0 {
		t.Fatal("concat of nothing should be empty")
	}
}

func TestNamesBodies(t *testing.T) {
	s := Set{"b": "TT", "a": "GG", "c": "AA"}
	if diff := cmp.Diff([]string{"a", "b", "c"}, s.Names()); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"AA", "GG", "TT"}, s.Bodies()); diff != "" {
		t.Fatal(diff)
	}
	if w := (Set{"a": "A-C", "b": "AC"}).Width(); w != 3 {
		t.Fatal("width got", w, "want 3")
	}
}

func TestSourceString(t *testing.T) {
	if s := FromPath("x.fa").String(); s != "x.fa" {
		t.Fatal("got", s)
	}
	if s := FromSet(Set{"b": "", "a": ""}).String(); s != "<a,b>" {
		t.Fatal("got", s)
	}
	if p, ok := FromPath("y.fa").Path(); !ok || p != "y.fa" {
		t.Fatal("Path() got", p, ok)
	}
	if _, ok := FromSet(Set{}).Path(); ok {
		t.Fatal("set source claims to be a path")
	}
}

// TestWriteRead writes a set out and reads it back. Some sequences are
// longer than an output line.
func TestWriteRead(t *testing.T) {
	want := Set{
		"short":     "AC-GT",
		"long":      strings.Repeat("ACDEFGHIKLMNPQRSTVWY-", 11),
		" spaced 1": "",
		"exact":     strings.Repeat("A", 60),
	}
	fname := filepath.Join(t.TempDir(), "out.fa")
	if err := WriteFile(fname, want, nil); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(FromPath(fname))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("write then read (-want +got):\n%s", diff)
	}
}

func TestWriteNoGaps(t *testing.T) {
	var b strings.Builder
	if err := Write(&b, Set{"s1": "A-C", "s2": "--"}, &WriteOpts{RmvGapsWrt: true, Width: 1}); err != nil {
		t.Fatal(err)
	}
	want := ">s1\nA\nC\n>s2\n"
	if b.String() != want {
		t.Fatalf("got\n%q\nwanted\n%q", b.String(), want)
	}
}
