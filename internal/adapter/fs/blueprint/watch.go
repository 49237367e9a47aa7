package blueprint

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alanyang/promptdeck/internal/domain/event"
	porteventbus "github.com/alanyang/promptdeck/internal/port/eventbus"
)

// Watch publishes a blueprints_changed event whenever the root directory is
// modified, so open UIs refresh the catalog. Bursts of filesystem events
// (e.g. a template being copied in) collapse into one notification.
func (s *Source) Watch(ctx context.Context, bus porteventbus.EventBus) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(s.root); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()

		var debounce *time.Timer
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(250*time.Millisecond, func() {
					if err := bus.Publish(ctx, event.New(event.TypeBlueprintsChanged, 0)); err != nil {
						slog.Warn("publishing blueprints_changed", "error", err)
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("blueprints watcher", "error", err)
			}
		}
	}()
	return nil
}
