package domain

import "time"

// WatchStats holds statistics about one watcher refresh pass.
type WatchStats struct {
	Cached    int
	New       int
	Published int
	EndOfFeed bool
	Duration  time.Duration
}
