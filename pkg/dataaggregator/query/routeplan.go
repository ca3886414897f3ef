package query

import "time"

// RoutePlan asks for a ranked set of journeys between two cities,
// optionally considering train+flight connections through an interchange
// city.
type RoutePlan struct {
	Origin      string
	Destination string

	// Interchange city for multi-modal routing, empty to only consider
	// direct services
	Hub string

	Date       time.Time
	Preference string
}
