package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"config-generator/internal/configfile"
	"config-generator/internal/gen"
	"config-generator/internal/logging"
	"config-generator/internal/settings"
)

func (a *App) runResolve(cmd *cobra.Command, args []string) error {
	if a.settings.Scheme == "" {
		return settings.ErrMissingScheme
	}

	path := args[0]

	object, err := configfile.ReadFile(a.fs, path)
	if err != nil {
		return err
	}

	out, diags, err := gen.ExportResolvedYAML(gen.Request{
		Object: object,
		Name:   configfile.NameFromPath(path),
		Scheme: a.settings.Scheme,
		Loader: configfile.NewDirLoader(a.fs, filepath.Dir(path)),
	})

	log := logging.FromContext(cmd.Context())
	for _, d := range diags.WithFile(path).Warnings {
		log.Warn().Str("code", d.Code).Str("path", d.Path).Msg(d.Message)
	}

	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)

	return err
}

func (a *App) runSchema(cmd *cobra.Command, _ []string) error {
	data, err := configfile.TemplateSchema()
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(append(data, '\n'))

	return err
}
