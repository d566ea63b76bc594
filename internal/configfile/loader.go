package configfile

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Loader resolves a reference source name to its configuration object.
type Loader interface {
	Load(name string) (map[string]any, error)
}

// DirLoader loads reference sources from "{Dir}/{name}.config".
type DirLoader struct {
	Fs  afero.Fs
	Dir string
}

// NewDirLoader returns a loader for the directory holding the file being
// generated.
func NewDirLoader(fs afero.Fs, dir string) *DirLoader {
	return &DirLoader{Fs: fs, Dir: dir}
}

// Load implements Loader.
func (l *DirLoader) Load(name string) (map[string]any, error) {
	return ReadFile(l.Fs, filepath.Join(l.Dir, name+Extension))
}
