// 9 Oct 2026

// Package gapplot draws a picture of where the gaps are in an alignment.
// There is one row per sequence and one cell per column. Gaps are grey,
// residues white and a column made only of gaps is red, so a bad
// alignment is easy to spot.
package gapplot

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/alncheck/pkg/seqcmp"
)

// Options control the drawing. The zero value is not useful, so start
// from DefaultOptions().
type Options struct {
	Cell     int     // pixels per cell, square
	FontSize float64 // points, at 72 dpi
	Labels   bool    // draw the sequence names on the left
}

// DefaultOptions gives small cells with names.
func DefaultOptions() *Options {
	return &Options{Cell: 6, FontSize: 10, Labels: true}
}

var (
	colGap    = color.RGBA{0xa0, 0xa0, 0xa0, 0xff}
	colAllGap = color.RGBA{0xe0, 0x20, 0x20, 0xff}
	colRes    = color.White
	colText   = color.Black
)

const pad = 4 // between labels and cells

// parseFont only fails if the embedded font is broken.
func parseFont() (*truetype.Font, error) {
	return freetype.ParseFont(goregular.TTF)
}

// labelWidth is the widest name in pixels.
func labelWidth(f *truetype.Font, size float64, names []string) int {
	face := truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72})
	defer face.Close()
	w := 0
	for _, name := range names {
		if n := font.MeasureString(face, name).Ceil(); n > w {
			w = n
		}
	}
	return w
}

// Image returns the picture without encoding it.
func Image(gs *seqcmp.GapSet, opts *Options) (*image.RGBA, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Cell < 1 {
		return nil, errors.New("gapplot: cell size must be at least 1")
	}
	ntaxa := len(gs.Taxa)
	if ntaxa == 0 || gs.Width == 0 {
		return nil, errors.New("gapplot: nothing to draw")
	}
	rowHt, margin := opts.Cell, 0
	var f *truetype.Font
	if opts.Labels {
		var err error
		if f, err = parseFont(); err != nil {
			return nil, err
		}
		if h := int(opts.FontSize + 0.5); h > rowHt {
			rowHt = h + 2
		}
		margin = labelWidth(f, opts.FontSize, gs.Taxa) + pad
	}
	img := image.NewRGBA(image.Rect(0, 0, margin+gs.Width*opts.Cell, ntaxa*rowHt))
	draw.Draw(img, img.Bounds(), image.NewUniform(colRes), image.Point{}, draw.Src)

	allGap := make(map[int]bool)
	for _, c := range gs.AllGap() {
		allGap[c] = true
	}
	mat := gs.Matrix()
	for r, row := range mat.Mat {
		for c, v := range row {
			if v == 0 {
				continue
			}
			src := colGap
			if allGap[c] {
				src = colAllGap
			}
			cell := image.Rect(margin+c*opts.Cell, r*rowHt, margin+(c+1)*opts.Cell, r*rowHt+opts.Cell)
			draw.Draw(img, cell, image.NewUniform(src), image.Point{}, draw.Src)
		}
	}
	if !opts.Labels {
		return img, nil
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(opts.FontSize)
	ctx.SetClip(image.Rect(0, 0, margin, img.Bounds().Dy()))
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(colText))
	for r, name := range gs.Taxa {
		pt := freetype.Pt(0, r*rowHt+int(opts.FontSize))
		if _, err := ctx.DrawString(name, pt); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// Render draws the gap set and writes it to w as a PNG.
func Render(gs *seqcmp.GapSet, w io.Writer, opts *Options) error {
	img, err := Image(gs, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// RenderFile is Render to a named file.
func RenderFile(gs *seqcmp.GapSet, fname string, opts *Options) error {
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := Render(gs, fp, opts); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
