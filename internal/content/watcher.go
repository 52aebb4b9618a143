package content

import (
	"context"
	"log/slog"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the content file on change and passes each successful
// reload to onChange. It blocks until ctx is canceled; parse failures are
// logged and the previous content stays live.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(Content)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	logger.Info("watching content file", "path", path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			c, err := Load(path)
			if err != nil {
				logger.Error("content reload failed", "error", err)
				continue
			}
			logger.Info("content reloaded", "path", path)
			onChange(c)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("content watcher error", "error", err)
		}
	}
}
