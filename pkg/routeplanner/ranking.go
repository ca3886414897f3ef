package routeplanner

import (
	"sort"

	"github.com/skyrail/skyrail/pkg/sdf"
	"golang.org/x/exp/slices"
)

// Weights of the fixed linear blend behind the balanced preference
const (
	balancedFareWeight = 0.7
	balancedTimeWeight = 0.3
)

// Rank returns the routes ordered under the given sort preference. The
// sort is stable so equal keyed routes keep their relative input order,
// and the caller's slice is cloned rather than reordered in place.
func Rank(routes []sdf.Route, preference sdf.SortPreference) []sdf.Route {
	ranked := slices.Clone(routes)

	switch preference {
	case sdf.SortPreferenceFastest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TotalTimeMinutes < ranked[j].TotalTimeMinutes
		})
	case sdf.SortPreferenceCheapest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].TotalFare < ranked[j].TotalFare
		})
	default:
		sort.SliceStable(ranked, func(i, j int) bool {
			return balancedScore(ranked[i]) < balancedScore(ranked[j])
		})
	}

	return ranked
}

func balancedScore(route sdf.Route) float64 {
	return balancedFareWeight*route.TotalFare + balancedTimeWeight*float64(route.TotalTimeMinutes)
}
