package vectorsite

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// WatchDebounce is how long Watch waits after the last change before reloading.
const WatchDebounce = 500 * time.Millisecond

// Watch reloads content whenever a file under the content directory changes.
// It blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("vectorsite: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addTree(watcher, a.Config.ContentDir); err != nil {
		return fmt.Errorf("vectorsite: watch %s: %w", a.Config.ContentDir, err)
	}
	a.log.WithField("dir", a.Config.ContentDir).Info("watching content")

	var timer *time.Timer
	reload := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			a.log.WithFields(logrus.Fields{"path": event.Name, "op": event.Op.String()}).Debug("content changed")
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(watcher, event.Name); err != nil {
						a.log.WithError(err).WithField("path", event.Name).Warn("watch new directory")
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(WatchDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			if err := a.Reload(); err != nil {
				a.log.WithError(err).Error("reload content")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.WithError(err).Warn("watcher error")
		}
	}
}

func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
