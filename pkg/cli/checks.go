// 13 Oct 2026

package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrew-torda/alncheck/pkg/seq"
	"github.com/andrew-torda/alncheck/pkg/seqcmp"
	"github.com/andrew-torda/alncheck/pkg/treecheck"
)

// checkCmds are the commands which just hand their files to a check.
func checkCmds(a *app) []*cobra.Command {
	type chk struct {
		use, short string
		f          func(...seq.Source) error
	}
	chks := []chk{
		{"taxa", "files have the same sequence names", seqcmp.SameTaxa},
		{"seqs", "files have the same ungapped sequences, whatever they are called", seqcmp.SameSequences},
		{"dataset", "files have the same names with the same ungapped sequences", seqcmp.SameDataset},
		{"gapcols", "no file has a column made only of gaps", seqcmp.NoGapColumns},
	}
	cmds := make([]*cobra.Command, len(chks))
	for i, c := range chks {
		f := c.f
		cmds[i] = &cobra.Command{
			Use:   c.use + " FILE...",
			Short: c.short,
			Args:  nArgs(1, -1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.report(cmd, f(seq.FromPaths(args...)...))
			},
		}
	}
	return cmds
}

// report prints "ok" in verbose mode if err is nil.
func (a *app) report(cmd *cobra.Command, err error) error {
	if err == nil && a.v.GetBool("verbose") {
		a.lg.Println(cmd.Name() + ": ok")
	}
	return err
}

func concatCmd(a *app) *cobra.Command {
	var result string
	cmd := &cobra.Command{
		Use:   "concat --result FILE PART...",
		Short: "the result is the parts stuck together",
		Long: `The result should hold each sequence's parts, one after the other.
Part files are taken in sorted order of their names. Gaps are ignored.`,
		Args: nArgs(1, -1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := seqcmp.SameConcatenation(seq.FromPath(result), seq.FromPaths(args...)...)
			return a.report(cmd, err)
		},
	}
	cmd.Flags().StringVarP(&result, "result", "r", "", "concatenated alignment")
	cmd.MarkFlagRequired("result")
	return cmd
}

func treeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree TREE ALN",
		Short: "the leaves of a newick tree are the sequences in an alignment",
		Args:  nArgs(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.report(cmd, treecheck.SameTaxa(args[0], seq.FromPath(args[1])))
		},
	}
}
