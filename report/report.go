// Package report prints user facing failures
package report

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/stepsquad/stepsquad/internal/osutil"
)

func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(int(osutil.ExitError))
}
