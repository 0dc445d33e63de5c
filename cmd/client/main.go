package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
