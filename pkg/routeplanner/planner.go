// Package routeplanner is the route composition and ranking core. It is
// pure and synchronous - every schedule list it works over has already
// been materialised by the fetch layer, and empty lists are a normal "no
// options" outcome rather than an error.
package routeplanner

import (
	"github.com/skyrail/skyrail/pkg/sdf"
)

// GenerateRoutes runs the full composition over one bundle of fetched
// schedules: direct routes unconditionally, interchange routes for every
// pairing that passes connection validation, then a ranking of the lot
// under the requested preference. An unrecognised preference falls back
// to balanced and the result always reports the preference actually
// applied.
func GenerateRoutes(bundle sdf.ScheduleBundle, preference string) *sdf.RankedResult {
	sortPreference := sdf.NormaliseSortPreference(preference)

	routes := BuildDirectRoutes(bundle.DirectTrains, bundle.DirectFlights)

	multiModalRoutes, bestLayoverRoute := BuildMultiModalRoutes(bundle.HubTrains, bundle.HubFlights)
	routes = append(routes, multiModalRoutes...)

	return &sdf.RankedResult{
		Routes:           Rank(routes, sortPreference),
		BestLayoverRoute: bestLayoverRoute,
		SortPreference:   sortPreference,
	}
}
