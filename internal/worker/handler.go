package worker

import (
	"context"
	"fmt"
	"log"
	"time"

	"moviereviews/internal/analytics"
	"moviereviews/internal/queue"
)

// Handler processes analytics events from the queue and forwards them to
// the notifier. Delivery failures are logged, not returned as fatal: the
// manager acks the message either way so a dead analytics backend cannot
// pile up the stream forever.
type Handler struct {
	notifier analytics.Notifier
}

// NewHandler creates a new event handler.
func NewHandler(notifier analytics.Notifier) *Handler {
	return &Handler{notifier: notifier}
}

// HandleEvent routes an event to the appropriate handler based on type.
func (h *Handler) HandleEvent(ctx context.Context, event queue.AnalyticsEvent) error {
	startTime := time.Now()
	var err error

	switch event.Type {
	case queue.EventReviewCreated:
		err = h.handleReviewCreated(ctx, event)
	default:
		log.Printf("[Worker] Unknown event type: %s", event.Type)
		return fmt.Errorf("unknown event type: %s", event.Type)
	}

	if err != nil {
		log.Printf("[Worker] HandleEvent FAILED: type=%s duration=%v err=%v",
			event.Type, time.Since(startTime), err)
		return err
	}

	log.Printf("[Worker] HandleEvent OK: type=%s duration=%v", event.Type, time.Since(startTime))
	return nil
}

// handleReviewCreated forwards a review event to the analytics backend.
func (h *Handler) handleReviewCreated(ctx context.Context, event queue.AnalyticsEvent) error {
	log.Printf("[Worker] ReviewCreated: movie=%q genre=%s user=%s", event.MovieTitle, event.Genre, event.Username)

	if err := h.notifier.TrackReviewEvent(ctx, event.MovieTitle, event.Genre, event.Action); err != nil {
		return fmt.Errorf("track review event: %w", err)
	}

	return nil
}
