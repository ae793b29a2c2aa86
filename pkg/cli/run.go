// 13 Oct 2026

package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/alncheck/pkg/config"
	"github.com/andrew-torda/alncheck/pkg/harness"
)

var errNoExe = errors.New("no pipeline given, set pipeline.exe or use --exe")

// readOpt reads a file of expected output, if one was named.
func readOpt(fname string) (*string, error) {
	if fname == "" {
		return nil, nil
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func runCmd(a *app) *cobra.Command {
	var rc int
	var outFile, errFile string
	cmd := &cobra.Command{
		Use:   "run [--rc N] [--stdout F] [--stderr F] -- ARGS...",
		Short: "run the configured pipeline and check what it returns",
		Long: `Run the pipeline named by pipeline.exe (or ALNCHECK_PIPELINE_EXE, or --exe)
with the given arguments. Fail unless the exit code is N. If --stdout or
--stderr name a file, the program's output must match it exactly.`,
		Args: nArgs(0, -1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.New(a.v)
			if err != nil {
				return usageError{err}
			}
			if c.Pipeline.Exe == "" {
				return usageError{errNoExe}
			}
			exp := harness.Expect{RC: rc}
			if exp.Stdout, err = readOpt(outFile); err != nil {
				return err
			}
			if exp.Stderr, err = readOpt(errFile); err != nil {
				return err
			}
			res, err := c.Runner(a.lg).Check(cmd.Context(), args, exp)
			if res != nil && a.v.GetBool("verbose") {
				a.lg.Printf("exit code %d, %d bytes stdout, %d bytes stderr", res.RC, len(res.Stdout), len(res.Stderr))
			}
			return a.report(cmd, err)
		},
	}
	f := cmd.Flags()
	f.IntVar(&rc, "rc", 0, "expected exit code")
	f.StringVar(&outFile, "stdout", "", "file with the expected stdout")
	f.StringVar(&errFile, "stderr", "", "file with the expected stderr")
	f.String("exe", "", "program to run")
	f.Duration("timeout", 0, "give up after this long")
	a.v.BindPFlag("pipeline.exe", f.Lookup("exe"))
	a.v.BindPFlag("pipeline.timeout", f.Lookup("timeout"))
	return cmd
}
