package main

import (
	"os"

	"github.com/stepsquad/stepsquad/app"
	"github.com/stepsquad/stepsquad/internal/pathutil"
	"github.com/stepsquad/stepsquad/report"
)

func run(args []string) error {
	err := pathutil.Initialize()
	if err != nil {
		return err
	}

	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
