// 11 Oct 2026

package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Runner runs the program under test. The command line is Exe, then
// Prefix, then whatever is passed to Run.
type Runner struct {
	Exe     string
	Prefix  []string      // arguments put before every call
	Dir     string        // working directory, "" for the current one
	Env     []string      // added to the environment, "KEY=value"
	Timeout time.Duration // zero means no limit beyond the context
	Log     *log.Logger   // nil means stderr
	Verbose bool          // log every command line
}

// Result is what came back from one run.
type Result struct {
	Args   []string // the full command line
	Stdout []byte
	Stderr []byte
	RC     int
}

// Expect says what a run should give. A nil Stdout or Stderr is not
// checked.
type Expect struct {
	RC     int
	Stdout *string
	Stderr *string
}

// RunError is returned by Check when the program did not behave as
// expected. What is one of "rc", "stdout" or "stderr".
type RunError struct {
	What   string
	Want   any
	Got    any
	Result *Result
}

func (e *RunError) Error() string {
	cmd := ""
	if e.Result != nil {
		cmd = strings.Join(e.Result.Args, " ")
	}
	switch e.What {
	case "rc":
		return fmt.Sprintf("%s: exit code %v did not match %v", cmd, e.Got, e.Want)
	default:
		return fmt.Sprintf("%s: %s %q did not match %q", cmd, e.What, e.Got, e.Want)
	}
}

// Args splits a command line on white space. There is no quoting.
func Args(s string) []string { return strings.Fields(s) }

func (r *Runner) logger() *log.Logger {
	if r.Log == nil {
		return log.New(os.Stderr, "", 0)
	}
	return r.Log
}

// Run runs the command and waits for it. Arguments are passed as they
// are. To start from one string, use Run(ctx, Args("-i in.fa -o out")).
// A non-zero exit code is not an error. An error means the program could
// not be started or was killed when the context or Timeout ran out.
func (r *Runner) Run(ctx context.Context, args []string) (*Result, error) {
	if r.Exe == "" {
		return nil, errors.New("runner has no executable")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	full := append(append([]string(nil), r.Prefix...), args...)
	cmd := exec.CommandContext(ctx, r.Exe, full...)
	cmd.Dir = r.Dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := &Result{Args: append([]string{r.Exe}, full...)}
	if r.Verbose {
		r.logger().Println("Command:", strings.Join(res.Args, " "))
	}
	err := cmd.Run()
	res.Stdout, res.Stderr = stdout.Bytes(), stderr.Bytes()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("running %s: %w", r.Exe, ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("starting %s: %w", r.Exe, err)
		}
		res.RC = exitErr.ExitCode()
	}
	return res, nil
}

// Check runs the command and compares the exit code, then stdout and
// stderr if they are expected. On a wrong exit code both streams go to
// the log.
func (r *Runner) Check(ctx context.Context, args []string, exp Expect) (*Result, error) {
	res, err := r.Run(ctx, args)
	if err != nil {
		return res, err
	}
	if res.RC != exp.RC {
		lg := r.logger()
		lg.Printf("exit code (%d) did not match %d", res.RC, exp.RC)
		lg.Printf("here is the stdout:\n%s", res.Stdout)
		lg.Printf("here is the stderr:\n%s", res.Stderr)
		return res, &RunError{What: "rc", Want: exp.RC, Got: res.RC, Result: res}
	}
	if exp.Stdout != nil && string(res.Stdout) != *exp.Stdout {
		return res, &RunError{What: "stdout", Want: *exp.Stdout, Got: string(res.Stdout), Result: res}
	}
	if exp.Stderr != nil && string(res.Stderr) != *exp.Stderr {
		return res, &RunError{What: "stderr", Want: *exp.Stderr, Got: string(res.Stderr), Result: res}
	}
	return res, nil
}
