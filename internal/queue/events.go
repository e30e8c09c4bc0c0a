package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types for the analytics stream
const (
	EventReviewCreated = "review_created"
)

// Stream names
const (
	StreamAnalytics = "stream:analytics"
)

// Consumer group name for analytics workers
const (
	ConsumerGroupAnalytics = "analytics_workers"
)

// AnalyticsEvent is an event published to the analytics stream. It carries
// everything the beacon needs so the worker never has to read the database.
type AnalyticsEvent struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"` // Unix timestamp when event occurred

	MovieID    int64   `json:"movie_id"`
	MovieTitle string  `json:"movie_title"`
	Genre      string  `json:"genre"`
	Username   string  `json:"username"`
	Rating     float64 `json:"rating"`

	// Action is the operation label forwarded to the analytics backend.
	Action string `json:"action"`
}

// NewReviewCreatedEvent creates an event for a successfully persisted
// review. The worker forwards it to Google Analytics.
func NewReviewCreatedEvent(movieID int64, title, genre, username string, rating float64) AnalyticsEvent {
	return AnalyticsEvent{
		Type:       EventReviewCreated,
		Timestamp:  time.Now().Unix(),
		MovieID:    movieID,
		MovieTitle: title,
		Genre:      genre,
		Username:   username,
		Rating:     rating,
		Action:     "post /reviews",
	}
}

// ToMap converts the event to a map for Redis XADD.
// Redis Streams store field-value pairs, so we serialize to JSON in a "data" field.
func (e AnalyticsEvent) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	return map[string]interface{}{
		"type": e.Type,
		"data": string(data),
	}, nil
}

// ParseAnalyticsEvent parses an AnalyticsEvent from Redis stream message values.
func ParseAnalyticsEvent(values map[string]interface{}) (AnalyticsEvent, error) {
	data, ok := values["data"].(string)
	if !ok {
		return AnalyticsEvent{}, fmt.Errorf("missing or invalid 'data' field")
	}

	var event AnalyticsEvent
	if err := json.Unmarshal([]byte(data), &event); err != nil {
		return AnalyticsEvent{}, fmt.Errorf("unmarshal event: %w", err)
	}
	return event, nil
}
