package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"config-generator/internal/gen"
)

func (a *App) runGenerate(cmd *cobra.Command, _ []string) error {
	if err := a.settings.Validate(); err != nil {
		return err
	}

	results, err := gen.NewRunner(a.fs, a.options()).RunDir(cmd.Context(), a.settings.ConfigPath)
	a.styles.report(cmd.OutOrStdout(), results)

	if err != nil && results != nil {
		failed := 0

		for _, res := range results {
			if !res.Diagnostics.IsValid() {
				failed++
			}
		}

		return fmt.Errorf("%d of %d files failed: %w", failed, len(results), err)
	}

	return err
}
