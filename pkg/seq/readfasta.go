// Reader for fasta format files.

package seq

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"
)

const cmmtChar = '>' // introduces a sequence name

// ReadError is returned when sequences cannot be opened or read.
// It wraps the underlying error, so errors.Is(err, fs.ErrNotExist)
// still works.
type ReadError struct {
	Path string // file name, empty if we were just given a reader
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return "reading sequences: " + e.Err.Error()
	}
	return "reading sequences from " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// lexer collects one sequence at a time.
type lexer struct {
	set  Set
	name string
	body strings.Builder
}

// flush stores the sequence we have been collecting. A sequence with
// no residues is kept, but one with no name is not.
func (l *lexer) flush() {
	if l.name != "" {
		l.set[l.name] = upper(l.body.String())
	}
	l.body.Reset()
}

// upper changes ASCII lower case to upper case, byte by byte. Anything
// else is left alone, so the length never changes.
func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// line takes one line of input. Leading and trailing white space is
// removed, but white space inside a line is left alone.
func (l *lexer) line(s string) {
	s = strings.TrimSpace(s)
	if len(s) > 0 && s[0] == cmmtChar {
		l.flush()
		l.name = s[1:]
		return
	}
	l.body.WriteString(s)
}

// ReadFasta reads fasta formatted sequences from rdr.
// Lines before the first ">" are ignored. If the same name appears
// twice, the last one wins.
func ReadFasta(rdr io.Reader) (Set, error) {
	l := lexer{set: make(Set)}
	br := bufio.NewReader(rdr)
	for {
		s, err := br.ReadString('\n')
		if len(s) > 0 {
			l.line(s)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ReadError{Err: err}
		}
	}
	l.flush()
	return l.set, nil
}

// Readfile takes a filename and reads sequences from it.
// A regular file is memory mapped and always unmapped and closed before
// we return. Anything else, like a fifo, is read as a stream.
// A filename of "-" means standard input.
func Readfile(fname string) (Set, error) {
	if fname == "-" {
		set, err := ReadFasta(os.Stdin)
		if err != nil {
			err.(*ReadError).Path = "stdin"
		}
		return set, err
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, &ReadError{Path: fname, Err: err}
	}
	defer fp.Close()

	fi, err := fp.Stat()
	if err != nil {
		return nil, &ReadError{Path: fname, Err: err}
	}
	if !fi.Mode().IsRegular() { // pipes and devices cannot be mapped
		set, err := ReadFasta(fp)
		if err != nil {
			err.(*ReadError).Path = fname
			return nil, err
		}
		return set, nil
	}
	if fi.Size() == 0 { // mmap refuses empty files
		return Set{}, nil
	}

	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, &ReadError{Path: fname, Err: err}
	}
	defer mm.Unmap()

	set, err := ReadFasta(bytes.NewReader(mm))
	if err != nil {
		err.(*ReadError).Path = fname
		return nil, err
	}
	return set, nil
}
