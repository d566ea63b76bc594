// Package settings resolves command line settings from flags, environment
// variables and an optional .config-generator.yaml file.
//
// Precedence follows viper: explicit flags, then CONFIG_GENERATOR_* variables,
// then the settings file, then flag defaults.
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment variable names.
const EnvPrefix = "CONFIG_GENERATOR"

// FileName is the settings file looked up in the working directory.
const FileName = ".config-generator.yaml"

// Keys, also used as flag names.
const (
	KeyScheme     = "scheme"
	KeyConfigPath = "config-path"
	KeyExt        = "ext"
	KeyWorkers    = "workers"
	KeyDryRun     = "dry-run"
	KeyLogLevel   = "log-level"
	KeyLogFormat  = "log-format"
)

// aliases maps legacy flag names to their keys.
var aliases = map[string]string{
	"name":       KeyScheme,
	"configPath": KeyConfigPath,
}

var (
	// ErrMissingScheme is returned when no scheme is configured.
	ErrMissingScheme = errors.New("scheme is required (--scheme)")
	// ErrMissingConfigPath is returned when no configuration directory is configured.
	ErrMissingConfigPath = errors.New("configuration directory is required (--config-path)")
)

// Settings holds the resolved values.
type Settings struct {
	Scheme     string `mapstructure:"scheme"`
	ConfigPath string `mapstructure:"config-path"`
	Ext        string `mapstructure:"ext"`
	Workers    int    `mapstructure:"workers"`
	DryRun     bool   `mapstructure:"dry-run"`
	LogLevel   string `mapstructure:"log-level"`
	LogFormat  string `mapstructure:"log-format"`
}

// Loader reads settings for one command invocation.
type Loader struct {
	fs  afero.Fs
	dir string
	v   *viper.Viper
}

// NewLoader returns a loader that reads FileName from dir on fs.
func NewLoader(fs afero.Fs, dir string) *Loader {
	v := viper.New()
	v.SetFs(fs)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyScheme, "")
	v.SetDefault(KeyConfigPath, "")
	v.SetDefault(KeyExt, "")
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")

	return &Loader{fs: fs, dir: dir, v: v}
}

// NormalizeFlagName maps legacy flag names onto their current spelling so
// "--name" is accepted for "--scheme".
func NormalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if key, ok := aliases[name]; ok {
		name = key
	}

	return pflag.NormalizedName(name)
}

// BindFlags binds every flag of flags whose name is a known key.
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	var err error

	flags.VisitAll(func(f *pflag.Flag) {
		switch f.Name {
		case KeyScheme, KeyConfigPath, KeyExt, KeyWorkers, KeyDryRun, KeyLogLevel, KeyLogFormat:
			if bindErr := l.v.BindPFlag(f.Name, f); bindErr != nil && err == nil {
				err = fmt.Errorf("binding flag %s: %w", f.Name, bindErr)
			}
		}
	})

	return err
}

// Load reads the settings file if present and returns the merged settings.
func (l *Loader) Load() (Settings, error) {
	path := filepath.Join(l.dir, FileName)

	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return Settings{}, fmt.Errorf("checking %s: %w", path, err)
	}

	if exists {
		l.v.SetConfigFile(path)

		if err := l.v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	var s Settings
	if err := l.v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}

	return s, nil
}

// Validate checks the settings needed to generate files.
func (s Settings) Validate() error {
	var errs []error

	if s.Scheme == "" {
		errs = append(errs, ErrMissingScheme)
	}

	if s.ConfigPath == "" {
		errs = append(errs, ErrMissingConfigPath)
	}

	if s.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", s.Workers))
	}

	return errors.Join(errs...)
}
