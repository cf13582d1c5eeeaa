package service

import (
	"context"
	"log"
)

// Notifier delivers short human-readable messages about todo activity.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// LogNotifier writes notifications to the process log. Used when no chat
// integration is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, text string) error {
	log.Printf("[info] notify: %s", text)
	return nil
}
