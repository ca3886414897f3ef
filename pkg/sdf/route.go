package sdf

type RouteType string

const (
	RouteTypeDirectTrain  RouteType = "DirectTrain"
	RouteTypeDirectFlight           = "DirectFlight"
	RouteTypeMultiModal             = "MultiModal"
)

// Route is one feasible journey between the origin and destination. Direct
// routes have a single leg and no layover. MultiModal routes always have
// exactly two legs - a train into the interchange followed by a flight out
// of it - and a layover that passed connection validation.
type Route struct {
	Type RouteType `groups:"basic"`

	// Legs in travel order
	Legs []ScheduleRecord `groups:"basic"`

	TotalFare        float64 `groups:"basic"`
	TotalTimeMinutes int     `groups:"basic"`
	LayoverMinutes   int     `groups:"basic"`
}

// RankedResult is the planner's answer for one request.
type RankedResult struct {
	Routes []Route `groups:"basic"`

	// The multi-modal route with the smallest positive layover, nil when no
	// valid interchange pairing exists
	BestLayoverRoute *Route `groups:"basic"`

	// The sort preference actually applied, after normalisation
	SortPreference SortPreference `groups:"basic"`
}
