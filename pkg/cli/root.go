// 13 Oct 2026

// Package cli has the alncheck commands. Each call to Run builds a fresh
// command tree, so there is no global state and tests can run it as
// often as they like.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/alncheck/pkg/config"
	. "github.com/andrew-torda/alncheck/pkg/seq/common"
)

// usageError marks a problem with the command line rather than the data.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

// nArgs checks the argument count and reports a usage error.
func nArgs(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		n := len(args)
		if n < min || (max >= 0 && n > max) {
			return usageError{fmt.Errorf("%s: wrong number of arguments (%d)", cmd.Name(), n)}
		}
		return nil
	}
}

// app is what the commands share.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	lg      *log.Logger
	v       *viper.Viper
	cfgFile string
}

// newRoot builds the command tree.
func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "alncheck",
		Short: "Check the output of a multiple sequence alignment pipeline",
		Long: `Check the output of a multiple sequence alignment pipeline.

Each check reads fasta files and exits with 0 if the property holds,
1 if it does not or a file could not be read, and 2 for a bad command line.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Setup(a.v, a.cfgFile); err != nil {
				return usageError{err}
			}
			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "yaml file with settings")
	pf.BoolP("verbose", "v", false, "say more")
	a.v.BindPFlag("verbose", pf.Lookup("verbose"))

	root.AddCommand(checkCmds(a)...)
	root.AddCommand(concatCmd(a), trimCmd(a), gapplotCmd(a), treeCmd(a), randseqCmd(a), runCmd(a))
	return root
}

// exitCode turns the result of a command into what the shell sees.
func exitCode(err error) int {
	var uerr usageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &uerr):
		return ExitUsageError
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "required flag"):
		return ExitUsageError
	}
	return ExitFailure
}

// Run runs alncheck with the given arguments, not including the
// program name, and returns the exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		lg:     log.New(stderr, "", 0),
		v:      viper.New(),
	}
	root := newRoot(a)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		a.lg.Println(err)
	}
	return exitCode(err)
}

// Execute is called by main.main().
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
