// Package nlquery talks to the external natural language understanding
// service that turns a free text travel question into a structured query.
package nlquery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// TravelQuery is the structured form the understanding service returns.
type TravelQuery struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`

	// Free text hint, normalised later by the planner
	Preference string `json:"preference"`

	// Interchange city the service identified, empty when the question
	// named none
	Hub string `json:"hub"`

	RouteTypes []string `json:"route_types"`
}

// DateValue parses the service's day field, defaulting to today when the
// question carried no date.
func (q *TravelQuery) DateValue() (time.Time, error) {
	if q.Date == "" {
		return time.Now(), nil
	}

	return time.Parse("2006-01-02", q.Date)
}

type Client struct {
	Endpoint string
}

// Parse sends the question off for understanding. Transient service
// failures are retried; a service that stays down is an error for the
// caller to report, not something to silently degrade.
func (c *Client) Parse(ctx context.Context, question string) (*TravelQuery, error) {
	requestBody, err := json.Marshal(map[string]string{
		"query": question,
	})
	if err != nil {
		return nil, err
	}

	var travelQuery TravelQuery

	retryBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	err = backoff.Retry(func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/parse", c.Endpoint), bytes.NewReader(requestBody))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("content-type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("understanding service returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("understanding service returned status %d", resp.StatusCode))
		}

		return json.NewDecoder(resp.Body).Decode(&travelQuery)
	}, retryBackoff)

	if err != nil {
		return nil, fmt.Errorf("natural language parse: %w", err)
	}

	return &travelQuery, nil
}
