// Package main is the single-binary entrypoint for ReportRunner.
package main

import "github.com/aaxis-ai/reportrunner/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
