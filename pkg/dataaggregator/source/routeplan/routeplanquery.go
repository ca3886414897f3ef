package routeplan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/skyrail/skyrail/pkg/dataaggregator"
	"github.com/skyrail/skyrail/pkg/dataaggregator/query"
	"github.com/skyrail/skyrail/pkg/routeplanner"
	"github.com/skyrail/skyrail/pkg/sdf"
	"github.com/sourcegraph/conc/pool"
)

// RoutePlanQuery materialises the four schedule lists the planner core
// needs, runs the composition and caches the outcome. The four fetches
// are independent so they run concurrently; any fetch failure degrades to
// an empty list because a dead provider reads as "no options here", never
// as a planner error.
func (s Source) RoutePlanQuery(q query.RoutePlan) (*sdf.RankedResult, error) {
	cacheItemPath := fmt.Sprintf(
		"cachedresults/routeplan/%s/%s/%s/%s/%s",
		q.Origin, q.Destination, q.Hub, q.Date.Format("2006-01-02"), sdf.NormaliseSortPreference(q.Preference),
	)

	if s.CachedResults != nil {
		cachedObject, err := s.CachedResults.Cache.Get(context.Background(), cacheItemPath)

		if err == nil {
			var result sdf.RankedResult
			if err := json.Unmarshal([]byte(cachedObject), &result); err == nil {
				return &result, nil
			}
		}
	}

	var bundle sdf.ScheduleBundle

	p := pool.New().WithMaxGoroutines(4)

	p.Go(func() {
		bundle.DirectTrains = s.fetchSchedules(query.Schedule{
			Origin: q.Origin, Destination: q.Destination, Date: q.Date, Mode: sdf.TransportModeTrain,
		})
	})
	p.Go(func() {
		bundle.DirectFlights = s.fetchSchedules(query.Schedule{
			Origin: q.Origin, Destination: q.Destination, Date: q.Date, Mode: sdf.TransportModeFlight,
		})
	})

	if q.Hub != "" {
		p.Go(func() {
			bundle.HubTrains = s.fetchSchedules(query.Schedule{
				Origin: q.Origin, Destination: q.Hub, Date: q.Date, Mode: sdf.TransportModeTrain,
			})
		})
		p.Go(func() {
			bundle.HubFlights = s.fetchSchedules(query.Schedule{
				Origin: q.Hub, Destination: q.Destination, Date: q.Date, Mode: sdf.TransportModeFlight,
			})
		})
	}

	p.Wait()

	result := routeplanner.GenerateRoutes(bundle, q.Preference)

	if s.CachedResults != nil {
		resultJSON, _ := json.Marshal(result)

		err := s.CachedResults.Cache.Set(context.Background(), cacheItemPath, string(resultJSON))
		if err != nil {
			log.Warn().Err(err).Msg("Failed to cache route plan")
		}
	}

	return result, nil
}

func (s Source) fetchSchedules(q query.Schedule) []sdf.ScheduleRecord {
	schedules, err := dataaggregator.Lookup[[]sdf.ScheduleRecord](q)

	if err != nil {
		log.Warn().
			Err(err).
			Str("origin", q.Origin).
			Str("destination", q.Destination).
			Str("mode", string(q.Mode)).
			Msg("Schedule lookup failed, continuing with no options")

		return []sdf.ScheduleRecord{}
	}

	return schedules
}
