package gen

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"config-generator/internal/configfile"
)

// Scan lists the .config files directly inside dir, sorted by name.
// Subdirectories are not searched.
func Scan(fs afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var paths []string

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != configfile.Extension {
			continue
		}

		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	sort.Strings(paths)

	return paths, nil
}

// OutputPath returns the Swift file generated from the configuration at
// path: "{dir}/{filename or name}[.{ext}].swift".
func OutputPath(path, filename, ext string) string {
	base := filename
	if base == "" {
		base = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	if ext != "" {
		base += "." + ext
	}

	return filepath.Join(filepath.Dir(path), base+".swift")
}
