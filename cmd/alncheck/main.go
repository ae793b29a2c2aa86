// 13 Oct 2026
// Check the output of an alignment pipeline from the command line.

package main

import (
	"os"

	"github.com/andrew-torda/alncheck/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
