// Command fluent prints date picker and navigation shell decisions.
package main

import (
	"io"
	"os"

	"github.com/go-drift/fluent/cmd/fluent/cmd"
	"github.com/go-drift/fluent/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the CLI and returns the process exit status: 1 for a reported
// error, 2 for a recovered panic.
func run(args []string, w io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportRecovered("fluent.main", r)
			code = 2
		}
	}()
	if err := cmd.Execute(args, w); err != nil {
		errors.Report("fluent", err)
		return 1
	}
	return 0
}
