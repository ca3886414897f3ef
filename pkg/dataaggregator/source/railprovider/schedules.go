package railprovider

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cenkalti/backoff/v4"
	"github.com/skyrail/skyrail/pkg/dataaggregator/query"
	"github.com/skyrail/skyrail/pkg/sdf"
)

func (s Source) ScheduleQuery(q query.Schedule) ([]sdf.ScheduleRecord, error) {
	requestURL := fmt.Sprintf(
		"%s/schedules/%s/%s?date=%s",
		s.Endpoint, url.PathEscape(q.Origin), url.PathEscape(q.Destination), q.Date.Format("2006-01-02"),
	)

	var providerResponse railProviderSchedulesResponse

	retryBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	err := backoff.Retry(func() error {
		resp, err := http.Get(requestURL)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("rail provider returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("rail provider returned status %d", resp.StatusCode))
		}

		return json.NewDecoder(resp.Body).Decode(&providerResponse)
	}, retryBackoff)

	if err != nil {
		return nil, fmt.Errorf("rail provider lookup: %w", err)
	}

	var schedules []sdf.ScheduleRecord

	for _, train := range providerResponse.Schedules {
		schedules = append(schedules, sdf.ScheduleRecord{
			PrimaryIdentifier: fmt.Sprintf("RAIL:SERVICE:%s", train.ID),
			DisplayName:       train.TrainName,
			OriginRef:         q.Origin,
			DestinationRef:    q.Destination,
			DepartureTime:     train.Departure,
			ArrivalTime:       train.Arrival,
			Fare:              train.Fare,
			DurationMinutes:   train.DurationMinutes,
			FareClass:         train.Class,
			Mode:              sdf.TransportModeTrain,
		})
	}

	return schedules, nil
}

type railProviderSchedulesResponse struct {
	Schedules []railProviderSchedule `json:"schedules"`
}

type railProviderSchedule struct {
	ID              string  `json:"id"`
	TrainName       string  `json:"train_name"`
	Departure       string  `json:"departure"`
	Arrival         string  `json:"arrival"`
	Fare            float64 `json:"fare"`
	DurationMinutes int     `json:"duration_minutes"`
	Class           string  `json:"class"`
}
