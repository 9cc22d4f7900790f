// internal/service/sweeper.go
package service

import (
	"context"
	"log/slog"
	"time"
)

// Sweeper periodically moves posts whose archival deadline has passed
// into the archive. One sweep is a single bulk update, so overlapping
// runs are harmless but never happen with a single Sweeper instance.
type Sweeper struct {
	posts    *PostService
	interval time.Duration
}

func NewSweeper(posts *PostService, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &Sweeper{posts: posts, interval: interval}
}

// Start runs the sweep loop until ctx is cancelled. It sweeps once
// immediately so a restart never delays overdue archival by a full
// interval.
func (s *Sweeper) Start(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "archival sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	archived, err := s.posts.ArchiveExpired(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "archival sweep failed", "error", err)
		return
	}
	if archived > 0 {
		slog.InfoContext(ctx, "archival sweep finished", "archived", archived)
	}
}
