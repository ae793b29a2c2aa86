// 4 Oct 2026
// Writing sets back out in fasta format.

package seq

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const cPerLine = 60 // residues per line on output

// WriteOpts controls output.
type WriteOpts struct {
	RmvGapsWrt bool // Remove gaps on output
	Width      int  // residues per line, cPerLine if zero
}

// Write puts the set out in fasta format, sorted by name.
// If gaps are removed and a sequence is left empty, only its
// name line is written.
func Write(w io.Writer, s Set, opts *WriteOpts) error {
	if opts == nil {
		opts = &WriteOpts{}
	}
	width := opts.Width
	if width <= 0 {
		width = cPerLine
	}
	bw := bufio.NewWriter(w)
	for _, name := range s.Names() {
		b := s[name]
		if opts.RmvGapsWrt {
			b = ungap(b)
		}
		if _, err := fmt.Fprintf(bw, "%c%s\n", cmmtChar, name); err != nil {
			return err
		}
		for ; len(b) > width; b = b[width:] {
			fmt.Fprint(bw, b[:width], "\n")
		}
		if len(b) > 0 {
			fmt.Fprint(bw, b, "\n")
		}
	}
	return bw.Flush()
}

// WriteFile writes the set to a file, replacing anything there.
func WriteFile(fname string, s Set, opts *WriteOpts) error {
	fp, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("creating output sequence file: %w", err)
	}
	if err := Write(fp, s, opts); err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return fp.Close()
}
