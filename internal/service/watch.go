package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storyfeed/internal/domain"
)

// Watcher refreshes the feed window on a schedule and publishes stories
// it has not seen before. Publishing is best effort per story; a failed
// publish never fails the pass.
type Watcher struct {
	window    FeedWindow
	publisher Publisher
	logger    *slog.Logger
	seen      map[string]struct{} // story IDs from the latest pass
}

func NewWatcher(window FeedWindow, publisher Publisher, logger *slog.Logger) *Watcher {
	return &Watcher{
		window:    window,
		publisher: publisher,
		logger:    logger.With("component", "watcher"),
		seen:      make(map[string]struct{}),
	}
}

// RunOnce performs one refresh pass.
func (w *Watcher) RunOnce(ctx context.Context) (*domain.WatchStats, error) {
	start := time.Now()

	result, err := w.window.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("refresh feed: %w", err)
	}

	stats := &domain.WatchStats{
		Cached:    len(result.Stories),
		EndOfFeed: result.EndOfPaginationReached,
	}

	// The refresh hands back the whole refreshed page, so the seen set is
	// rebuilt each pass instead of accumulating across them.
	seen := make(map[string]struct{}, len(result.Stories))

	for i := range result.Stories {
		story := &result.Stories[i]
		seen[story.ID] = struct{}{}
		if _, ok := w.seen[story.ID]; ok {
			continue
		}
		stats.New++

		if w.publisher == nil {
			continue
		}
		if err := w.publisher.Publish(ctx, story); err != nil {
			w.logger.Error("publish story", "id", story.ID, "error", err)
			continue
		}
		stats.Published++
	}
	w.seen = seen

	stats.Duration = time.Since(start)

	w.logger.Info("watch pass completed",
		"cached", stats.Cached,
		"new", stats.New,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}
