package routeplanner

import (
	"github.com/rs/zerolog/log"
	"github.com/skyrail/skyrail/pkg/sdf"
)

// BuildDirectRoutes turns every direct schedule into a single leg Route,
// trains first then flights. Final ordering is the Ranking Engine's job
// but emission order stays deterministic.
func BuildDirectRoutes(trains []sdf.ScheduleRecord, flights []sdf.ScheduleRecord) []sdf.Route {
	routes := []sdf.Route{}

	for _, train := range trains {
		routes = append(routes, sdf.Route{
			Type:             sdf.RouteTypeDirectTrain,
			Legs:             []sdf.ScheduleRecord{train},
			TotalFare:        train.Fare,
			TotalTimeMinutes: train.DurationMinutes,
		})
	}

	for _, flight := range flights {
		routes = append(routes, sdf.Route{
			Type:             sdf.RouteTypeDirectFlight,
			Legs:             []sdf.ScheduleRecord{flight},
			TotalFare:        flight.Fare,
			TotalTimeMinutes: flight.DurationMinutes,
		})
	}

	return routes
}

// BuildMultiModalRoute combines an accepted train & flight pairing into a
// two leg Route. Only call this once ValidConnection has accepted the
// pair. The layover is recomputed here and must match the validator's.
func BuildMultiModalRoute(train sdf.ScheduleRecord, flight sdf.ScheduleRecord) (sdf.Route, error) {
	layover, err := layoverMinutes(train, flight)
	if err != nil {
		return sdf.Route{}, err
	}

	return sdf.Route{
		Type:             sdf.RouteTypeMultiModal,
		Legs:             []sdf.ScheduleRecord{train, flight},
		TotalFare:        train.Fare + flight.Fare,
		TotalTimeMinutes: train.DurationMinutes + flight.DurationMinutes + layover,
		LayoverMinutes:   layover,
	}, nil
}

// BuildMultiModalRoutes pairs every interchange train with every
// interchange flight, keeps the pairings that are legal connections and
// returns them along with the route holding the smallest strictly
// positive layover. Schedule counts per day per interchange are tens not
// thousands so the full cross product scan is fine.
//
// A leg with an unparseable timestamp voids only the pairings it appears
// in - the record is logged and the scan continues so partial results
// stay available.
func BuildMultiModalRoutes(hubTrains []sdf.ScheduleRecord, hubFlights []sdf.ScheduleRecord) ([]sdf.Route, *sdf.Route) {
	routes := []sdf.Route{}
	var bestLayoverRoute *sdf.Route

	for _, train := range hubTrains {
		for _, flight := range hubFlights {
			valid, err := ValidConnection(train, flight)
			if err != nil {
				log.Warn().
					Err(err).
					Str("train", train.PrimaryIdentifier).
					Str("flight", flight.PrimaryIdentifier).
					Msg("Skipping pairing with unparseable timetable")
				continue
			}

			if !valid {
				continue
			}

			route, err := BuildMultiModalRoute(train, flight)
			if err != nil {
				log.Warn().
					Err(err).
					Str("train", train.PrimaryIdentifier).
					Str("flight", flight.PrimaryIdentifier).
					Msg("Skipping pairing with unparseable timetable")
				continue
			}

			routes = append(routes, route)

			// The validation threshold already rules a zero layover out but
			// best tracking still only considers strictly positive values
			if route.LayoverMinutes > 0 && (bestLayoverRoute == nil || route.LayoverMinutes < bestLayoverRoute.LayoverMinutes) {
				best := route
				bestLayoverRoute = &best
			}
		}
	}

	return routes, bestLayoverRoute
}
