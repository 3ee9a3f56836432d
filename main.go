package main

import (
	"os"

	"github.com/emr-dev1/resume-matcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
