// Package main is the entry point for the nasa-search console tool.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/ytget/nasa-images/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrSearchFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
