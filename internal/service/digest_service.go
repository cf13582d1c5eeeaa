package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"todo-service/internal/model"
)

// StatsSource provides aggregate counts over stored todos.
type StatsSource interface {
	Stats(ctx context.Context) (model.Stats, error)
}

// DigestService builds human-readable summaries for periodic notifications.
type DigestService struct {
	stats    StatsSource
	notifier Notifier
}

func NewDigestService(stats StatsSource, notifier Notifier) *DigestService {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &DigestService{stats: stats, notifier: notifier}
}

func (s *DigestService) Summary(ctx context.Context, now time.Time) (string, error) {
	stats, err := s.stats.Stats(ctx)
	if err != nil {
		return "", &StorageError{Op: "todo stats", Err: err}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Todo digest for %s\n", now.Format("2006-01-02 15:04"))
	if stats.Total == 0 {
		b.WriteString("No todos. Enjoy the free time.")
		return b.String(), nil
	}

	fmt.Fprintf(&b, "Total: %d, open: %d, fun: %d\n", stats.Total, stats.Open(), stats.Fun)
	for _, pc := range stats.ByPriority {
		label := pc.Priority
		if label == "" {
			label = "(none)"
		}
		fmt.Fprintf(&b, "  %s: %d\n", label, pc.Count)
	}
	return strings.TrimSpace(b.String()), nil
}

// Deliver builds the summary and sends it through the notifier.
func (s *DigestService) Deliver(ctx context.Context, now time.Time) error {
	text, err := s.Summary(ctx, now)
	if err != nil {
		return err
	}
	if err := s.notifier.Notify(ctx, text); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	return nil
}
