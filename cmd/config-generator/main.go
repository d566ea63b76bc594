// Package main provides the CLI entrypoint for config-generator.
//
// config-generator turns JSON .config files into Swift source:
//   - every property becomes a typed constant
//   - overrides select per-scheme values, matched exactly or by pattern
//   - secrets are AES encrypted with a key declared in the same file
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"config-generator/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.NewRootCommand(afero.NewOsFs(), ".").ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
