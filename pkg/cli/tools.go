// 13 Oct 2026

package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/alncheck/pkg/gapplot"
	"github.com/andrew-torda/alncheck/pkg/randseq"
	"github.com/andrew-torda/alncheck/pkg/seq"
	"github.com/andrew-torda/alncheck/pkg/seqcmp"
	"github.com/andrew-torda/alncheck/pkg/squash"
)

// output opens fname for writing, or gives back stdout for "" or "-".
func (a *app) output(fname string) (io.Writer, func() error, error) {
	if fname == "" || fname == "-" {
		return a.stdout, func() error { return nil }, nil
	}
	fp, err := os.Create(fname)
	if err != nil {
		return nil, nil, err
	}
	return fp, fp.Close, nil
}

func trimCmd(a *app) *cobra.Command {
	var ref string
	cmd := &cobra.Command{
		Use:   "trim IN [OUT]",
		Short: "remove columns made only of gaps",
		Long: `Remove the columns of an alignment where every sequence has a gap.
With --ref, remove instead the columns where the named sequence has a gap.
If no output file is given, stdout will be used.`,
		Args: nArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := seq.Parse(seq.FromPath(args[0]))
			if err != nil {
				return err
			}
			var cols []int
			if ref != "" {
				s, cols, err = squash.ByRef(s, ref)
			} else {
				s, cols, err = squash.AllGap(s)
			}
			if err != nil {
				return err
			}
			if a.v.GetBool("verbose") {
				a.lg.Println("removed", len(cols), "columns")
			}
			var outfile string
			if len(args) > 1 {
				outfile = args[1]
			}
			w, closer, err := a.output(outfile)
			if err != nil {
				return err
			}
			if err := seq.Write(w, s, nil); err != nil {
				closer()
				return fmt.Errorf("fail writing to %s: %w", outfile, err)
			}
			return closer()
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "name of a reference sequence")
	return cmd
}

func gapplotCmd(a *app) *cobra.Command {
	opts := gapplot.DefaultOptions()
	var noLabels bool
	cmd := &cobra.Command{
		Use:   "gapplot IN OUT.png",
		Short: "draw where the gaps are",
		Args:  nArgs(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := seq.Parse(seq.FromPath(args[0]))
			if err != nil {
				return err
			}
			opts.Labels = !noLabels
			return gapplot.RenderFile(seqcmp.NewGapSet(s), args[1], opts)
		},
	}
	cmd.Flags().IntVar(&opts.Cell, "cell", opts.Cell, "pixels per cell")
	cmd.Flags().Float64Var(&opts.FontSize, "font-size", opts.FontSize, "label size in points")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "do not write sequence names")
	return cmd
}

// atoi is strconv.Atoi with a usage error.
func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, usageError{fmt.Errorf("%s: %q is not a number", name, s)}
	}
	return n, nil
}

func randseqCmd(a *app) *cobra.Command {
	args := randseq.RandSeqArgs{}
	cmd := &cobra.Command{
		Use:   "randseq OUT NSEQ LEN",
		Short: "write random aligned sequences for testing",
		Args:  nArgs(3, 3),
		RunE: func(cmd *cobra.Command, cargs []string) error {
			var err error
			if args.Nseq, err = atoi("NSEQ", cargs[1]); err != nil {
				return err
			}
			if args.Len, err = atoi("LEN", cargs[2]); err != nil {
				return err
			}
			w, closer, err := a.output(cargs[0])
			if err != nil {
				return err
			}
			args.Wrtr = w
			if err := randseq.RandSeqMain(&args); err != nil {
				closer()
				return err
			}
			return closer()
		},
	}
	f := cmd.Flags()
	f.Int64Var(&args.Iseed, "seed", 1, "random number seed")
	f.StringVar(&args.Cmmt, "prefix", "s", "start of sequence names")
	f.BoolVar(&args.NoGap, "nogap", false, "no gaps")
	f.BoolVar(&args.MkErr, "mkerr", false, "make the last sequence one shorter")
	f.BoolVar(&args.Messy, "messy", false, "break lines at random and pad with blanks")
	return cmd
}
