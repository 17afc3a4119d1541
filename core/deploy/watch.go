package deploy

import (
	"context"
	"fmt"
	"path/filepath"

	"webapp-standalone/core/metrics"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the descriptor whenever it changes on disk, until ctx is done.
// The deployment must live on the operating system filesystem.
func (d *Deployment) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create descriptor watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files; watching the directory survives that.
	dir := filepath.Join(d.DocBase, filepath.Dir(filepath.FromSlash(DescriptorPath)))
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	descriptor := filepath.Join(d.DocBase, filepath.FromSlash(DescriptorPath))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != descriptor || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := d.Reload(); err != nil {
				metrics.DescriptorReloads.WithLabelValues("error").Inc()
				d.logger.Warn("Descriptor reload failed, keeping previous", zap.Error(err))
				continue
			}
			metrics.DescriptorReloads.WithLabelValues("ok").Inc()
			d.logger.Info("Descriptor reloaded", zap.String("path", descriptor))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			d.logger.Warn("Descriptor watcher error", zap.Error(err))
		}
	}
}
