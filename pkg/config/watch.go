package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Watch calls onChange with freshly loaded settings every time the file at
// path is written, created, renamed or removed. It watches the parent
// directory so editors that replace the file on save are seen. Watch blocks
// until ctx is done.
func Watch(ctx context.Context, afs afero.Fs, path string, onChange func(*Settings, error)) error {
	logger := zerolog.Ctx(ctx)

	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	logger.Debug().Str("path", abs).Msg("watching settings")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}

			logger.Debug().Str("op", ev.Op.String()).Msg("settings changed")

			onChange(Load(afs, abs))
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(werr).Msg("settings watcher")
		}
	}
}
