package flightprovider

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
		"%s/flights/%s/%s?date=%s",
		s.Endpoint, url.PathEscape(q.Origin), url.PathEscape(q.Destination), q.Date.Format("2006-01-02"),
	)

	var providerResponse flightProviderSchedulesResponse

	retryBackoff := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)
	err := backoff.Retry(func() error {
		req, err := http.NewRequest("GET", requestURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("x-app-key", s.AppKey)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("flight provider returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("flight provider returned status %d", resp.StatusCode))
		}

		return json.NewDecoder(resp.Body).Decode(&providerResponse)
	}, retryBackoff)

	if err != nil {
		return nil, fmt.Errorf("flight provider lookup: %w", err)
	}

	var schedules []sdf.ScheduleRecord

	for _, flight := range providerResponse.Flights {
		schedules = append(schedules, sdf.ScheduleRecord{
			PrimaryIdentifier: fmt.Sprintf("AIR:FLIGHT:%s", flight.FlightNumber),
			DisplayName:       fmt.Sprintf("%s %s", flight.Airline, flight.FlightNumber),
			OriginRef:         q.Origin,
			DestinationRef:    q.Destination,
			DepartureTime:     flight.Departure,
			ArrivalTime:       flight.Arrival,
			Fare:              flight.Fare,
			DurationMinutes:   flight.DurationMinutes,
			FareClass:         flight.Cabin,
			Mode:              sdf.TransportModeFlight,
		})
	}

	return schedules, nil
}

type flightProviderSchedulesResponse struct {
	Flights []flightProviderSchedule `json:"flights"`
}

type flightProviderSchedule struct {
	FlightNumber    string  `json:"flight_number"`
	Airline         string  `json:"airline"`
	Departure       string  `json:"departure"`
	Arrival         string  `json:"arrival"`
	Fare            float64 `json:"fare"`
	DurationMinutes int     `json:"duration_minutes"`
	Cabin           string  `json:"cabin"`
}
