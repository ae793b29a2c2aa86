// 9 Oct 2026

package gapplot_test

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	. "github.com/andrew-torda/alncheck/pkg/gapplot"
	"github.com/andrew-torda/alncheck/pkg/seq"
	"github.com/andrew-torda/alncheck/pkg/seqcmp"
)

var aln = seq.Set{
	"ref": "X-BAAA-",
	"s2":  "-DBAA--",
	"s3":  "-GBA---",
}

func TestNoLabels(t *testing.T) {
	gs := seqcmp.NewGapSet(aln)
	var buf bytes.Buffer
	opts := &Options{Cell: 5}
	if err := Render(gs, &buf, opts); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 7*5 || b.Dy() != 3*5 {
		t.Fatal("got size", b.Dx(), b.Dy(), "wanted", 35, 15)
	}
	red := color.RGBAModel.Convert(img.At(6*5+2, 2)).(color.RGBA)
	if red.R < 0xc0 || red.G > 0x40 {
		t.Fatal("all gap column should be red, got", red)
	}
	white := color.RGBAModel.Convert(img.At(2, 2)).(color.RGBA) // "ref" col 0 is X
	if white.R != 0xff || white.G != 0xff {
		t.Fatal("residue should be white, got", white)
	}
	grey := color.RGBAModel.Convert(img.At(5+2, 2)).(color.RGBA) // "ref" col 1
	if grey.R != grey.G || grey.R == 0xff {
		t.Fatal("gap should be grey, got", grey)
	}
}

func TestLabels(t *testing.T) {
	gs := seqcmp.NewGapSet(aln)
	img, err := Image(gs, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() <= gs.Width*DefaultOptions().Cell {
		t.Fatal("no room made for labels")
	}
	dark := false // some text pixel in the margin
	for x := 0; x < 20 && !dark; x++ {
		for y := 0; y < img.Bounds().Dy(); y++ {
			if c := img.RGBAAt(x, y); c.R < 0x80 {
				dark = true
				break
			}
		}
	}
	if !dark {
		t.Fatal("labels were not drawn")
	}
}

func TestFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "gaps.png")
	if err := RenderFile(seqcmp.NewGapSet(aln), fname, nil); err != nil {
		t.Fatal(err)
	}
}

func TestEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(seqcmp.NewGapSet(seq.Set{}), &buf, nil); err == nil {
		t.Fatal("empty set should not draw")
	}
	if err := Render(seqcmp.NewGapSet(aln), &buf, &Options{}); err == nil {
		t.Fatal("zero cell size should fail")
	}
}
