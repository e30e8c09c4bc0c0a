// Package analytics sends best-effort review events to Google Analytics
// over the Measurement Protocol. Nothing here may affect a request's
// outcome: callers treat every error as log-only.
package analytics

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const collectURL = "https://www.google-analytics.com/collect"

// Notifier is the outbound side channel for review events.
type Notifier interface {
	// TrackReviewEvent reports that a review was created for the given
	// movie. The action string labels the originating operation.
	TrackReviewEvent(ctx context.Context, movieTitle, genre, action string) error
}

// GAClient implements Notifier against the Google Analytics Measurement
// Protocol (v1). Each hit is a GET with the event encoded in the query
// string; the genre becomes the event category and the movie title rides
// in a custom dimension.
type GAClient struct {
	trackingID string
	endpoint   string
	httpClient *http.Client
}

func NewGAClient(trackingID string) *GAClient {
	return &GAClient{
		trackingID: trackingID,
		endpoint:   collectURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *GAClient) TrackReviewEvent(ctx context.Context, movieTitle, genre, action string) error {
	if c.trackingID == "" {
		// Analytics not configured; drop the event silently.
		return nil
	}

	params := url.Values{}
	params.Set("v", "1")
	params.Set("tid", c.trackingID)
	params.Set("cid", uuid.NewString())
	params.Set("t", "event")
	params.Set("ec", genre)
	params.Set("ea", action)
	params.Set("el", "API Request for Movie Review")
	params.Set("ev", "1")
	params.Set("cd1", movieTitle)
	params.Set("cm1", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build analytics request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send analytics event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("analytics endpoint returned status %d", resp.StatusCode)
	}

	return nil
}
