// Package cli provides the cobra commands of config-generator.
package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"config-generator/internal/gen"
	"config-generator/internal/logging"
	"config-generator/internal/settings"
)

// Version is set at build time.
var Version = "dev"

// App holds the state shared by the commands of one invocation.
type App struct {
	fs       afero.Fs
	workDir  string
	settings settings.Settings
	styles   Styles
}

// NewRootCommand builds the command tree. Configuration and output files are
// accessed through fs; workDir is searched for the settings file.
func NewRootCommand(fs afero.Fs, workDir string) *cobra.Command {
	app := &App{fs: fs, workDir: workDir}

	root := &cobra.Command{
		Use:   "config-generator",
		Short: "Generate Swift constants from .config files",
		Long: `config-generator reads every .config file of a directory and writes a Swift
file of constants for the selected scheme next to it.

Running config-generator without a subcommand is the same as "generate".
Settings can also come from CONFIG_GENERATOR_* environment variables or a
.config-generator.yaml file in the working directory.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: app.setup,
		RunE:              app.runGenerate,
	}

	root.SetGlobalNormalizationFunc(settings.NormalizeFlagName)

	pf := root.PersistentFlags()
	pf.StringP(settings.KeyScheme, "s", "", "scheme whose overrides are applied (alias --name)")
	pf.String(settings.KeyLogLevel, "info", "log level: trace, debug, info, warn, error")
	pf.String(settings.KeyLogFormat, logging.FormatConsole, "log format: console or json")

	addGenerateFlags(root)

	generate := &cobra.Command{
		Use:   "generate",
		Short: "Generate Swift files for every .config file in a directory",
		Args:  cobra.NoArgs,
		RunE:  app.runGenerate,
	}
	addGenerateFlags(generate)

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever a .config file changes",
		Args:  cobra.NoArgs,
		RunE:  app.runWatch,
	}
	addGenerateFlags(watch)

	root.AddCommand(
		generate,
		watch,
		&cobra.Command{
			Use:   "resolve <file>",
			Short: "Print the value every property takes for the scheme as YAML",
			Args:  cobra.ExactArgs(1),
			RunE:  app.runResolve,
		},
		&cobra.Command{
			Use:   "schema",
			Short: "Print the JSON Schema of the template block",
			Args:  cobra.NoArgs,
			RunE:  app.runSchema,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), app.styles.Title.Render("config-generator")+" "+Version)
				return err
			},
		},
	)

	return root
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP(settings.KeyConfigPath, "c", "", "directory holding the .config files (alias --configPath)")
	f.String(settings.KeyExt, "", "extra extension inserted before .swift")
	f.Int(settings.KeyWorkers, 0, "files generated in parallel (0 uses every CPU)")
	f.Bool(settings.KeyDryRun, false, "report what would change without writing")
}

func (a *App) setup(cmd *cobra.Command, _ []string) error {
	loader := settings.NewLoader(a.fs, a.workDir)
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return err
	}

	s, err := loader.Load()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}

	format, err := logging.ParseFormat(s.LogFormat)
	if err != nil {
		return err
	}

	cfg := logging.DefaultConfig()
	cfg.Level = level
	cfg.Format = format
	cfg.Out = cmd.ErrOrStderr()

	cmd.SetContext(logging.WithContext(cmd.Context(), logging.New(cfg)))

	a.settings = s
	a.styles = NewStyles(cmd.OutOrStdout())

	return nil
}

func (a *App) options() gen.Options {
	return gen.Options{
		Scheme:  a.settings.Scheme,
		Ext:     a.settings.Ext,
		Workers: a.settings.Workers,
		DryRun:  a.settings.DryRun,
	}
}
