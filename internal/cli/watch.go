package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"config-generator/internal/configfile"
	"config-generator/internal/gen"
	"config-generator/internal/logging"
)

// debounce groups the burst of events an editor save produces.
const debounce = 100 * time.Millisecond

func (a *App) runWatch(cmd *cobra.Command, _ []string) error {
	if err := a.settings.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	runner := gen.NewRunner(a.fs, a.options())
	out := cmd.OutOrStdout()

	return watch(ctx, a.settings.ConfigPath, debounce, func() {
		results, err := runner.RunDir(ctx, a.settings.ConfigPath)
		if results == nil && err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("generation failed")
			return
		}

		a.styles.report(out, results)
	})
}

// watch calls onChange once, then again after every quiet period of delay
// following a change to a .config file in dir. It returns when ctx is done.
func watch(ctx context.Context, dir string, delay time.Duration, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	log := logging.FromContext(ctx)
	log.Info().Str("dir", dir).Msg("watching for changes")

	onChange()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isConfigEvent(ev) {
				continue
			}

			log.Debug().Str("file", ev.Name).Stringer("op", ev.Op).Msg("configuration changed")

			if timer == nil {
				timer = time.NewTimer(delay)
			} else {
				timer.Reset(delay)
			}

			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Warn().Err(err).Msg("watcher error")

		case <-fire:
			fire = nil

			onChange()
		}
	}
}

func isConfigEvent(ev fsnotify.Event) bool {
	if filepath.Ext(ev.Name) != configfile.Extension {
		return false
	}

	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}
