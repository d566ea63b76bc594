package gen

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"config-generator/internal/configfile"
	"config-generator/internal/diagnostic"
	"config-generator/internal/logging"
)

// FileError is a failure to generate one configuration file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// failed marks res as failed with err, recorded both as a *FileError and as
// an error diagnostic.
func failed(res Result, err error) Result {
	res.Status = StatusFailed
	res.Err = &FileError{Path: res.Path, Err: err}
	res.Diagnostics.AddError(diagnostic.CodeGenerationFailed, err.Error(), res.Path, "")

	return res
}

// Result is the outcome of generating one configuration file.
type Result struct {
	Path        string
	Output      string
	Status      Status
	Diagnostics diagnostic.Diagnostics
	Err         error
}

// Options configures a Runner.
type Options struct {
	Scheme string
	// Ext is inserted before ".swift" in output names when not empty.
	Ext string
	// Workers bounds the files processed at once; zero means GOMAXPROCS.
	Workers int
	DryRun  bool
}

// Runner generates many configuration files in parallel.
type Runner struct {
	fs       afero.Fs
	opts     Options
	registry Registry
	writer   *Writer
}

// NewRunner returns a runner on fs using the default registry.
func NewRunner(fs afero.Fs, opts Options) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	return &Runner{
		fs:       fs,
		opts:     opts,
		registry: DefaultRegistry,
		writer:   NewWriter(fs, opts.DryRun),
	}
}

// Run generates every file in paths. Results are returned in input order.
// A failing file does not stop the others; the returned error joins every
// *FileError.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	var g errgroup.Group

	g.SetLimit(r.opts.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = failed(Result{Path: path}, err)
				return nil
			}

			results[i] = r.Generate(logging.WithFile(ctx, path), path)

			return nil
		})
	}

	_ = g.Wait()

	var errs []error

	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}

	return results, errors.Join(errs...)
}

// RunDir generates every .config file in dir.
func (r *Runner) RunDir(ctx context.Context, dir string) ([]Result, error) {
	paths, err := Scan(r.fs, dir)
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Debug().Str("dir", dir).Int("files", len(paths)).Msg("scanned configuration directory")

	return r.Run(ctx, paths)
}

// Generate renders and writes a single configuration file.
func (r *Runner) Generate(ctx context.Context, path string) Result {
	log := logging.FromContext(ctx)
	res := Result{Path: path, Status: StatusFailed}

	fail := func(err error) Result {
		log.Debug().Err(err).Msg("generation failed")
		return failed(res, err)
	}

	object, err := configfile.ReadFile(r.fs, path)
	if err != nil {
		return fail(err)
	}

	loader := configfile.NewDirLoader(r.fs, filepath.Dir(path))

	out, diags, err := r.registry.Render(Request{
		Object: object,
		Name:   configfile.NameFromPath(path),
		Scheme: r.opts.Scheme,
		Loader: loader,
	})
	res.Diagnostics = diags.WithFile(path)
	res.Diagnostics.Sort()

	for _, d := range res.Diagnostics.Warnings {
		log.Warn().Str("code", d.Code).Str("path", d.Path).Strs("suggestions", d.Suggestions).Msg(d.Message)
	}

	if err != nil {
		return fail(err)
	}

	res.Output = OutputPath(path, out.Filename, r.opts.Ext)

	res.Status, err = r.writer.Write(res.Output, []byte(out.Text))
	if err != nil {
		return fail(fmt.Errorf("writing output: %w", err))
	}

	log.Debug().Str("output", res.Output).Stringer("status", res.Status).Msg("generated")

	return res
}
