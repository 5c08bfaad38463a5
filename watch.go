package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// watchCase calls onChange once, then again every time the file at path is
// written or replaced, until ctx is done. Failures of onChange are logged and
// do not stop the watch.
func watchCase(ctx context.Context, path string, log logrus.FieldLogger, onChange func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("hx_rating: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so the directory is watched.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("hx_rating: watching %s: %w", path, err)
	}

	run := func() {
		if err := onChange(); err != nil {
			log.WithError(err).Error("rating failed")
		}
	}
	run()
	log.WithField("file", path).Info("watching case file")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				log.WithField("op", event.Op.String()).Debug("case file changed")
				run()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		}
	}
}
