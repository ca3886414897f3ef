package global

import (
	"github.com/skyrail/skyrail/pkg/dataaggregator"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source/flightprovider"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source/localtimetable"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source/railprovider"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source/routeplan"
	"github.com/skyrail/skyrail/pkg/util"
)

func Setup() {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	env := util.GetEnvironmentVariables()

	dataaggregator.GlobalAggregator.RegisterSource(railprovider.Source{
		Endpoint: env["SKYRAIL_RAIL_PROVIDER_ENDPOINT"],
	})

	dataaggregator.GlobalAggregator.RegisterSource(flightprovider.Source{
		Endpoint: env["SKYRAIL_FLIGHT_PROVIDER_ENDPOINT"],
		AppKey:   env["SKYRAIL_FLIGHT_PROVIDER_API_KEY"],
	})

	dataaggregator.GlobalAggregator.RegisterSource(localtimetable.Source{})

	routeplanSource := routeplan.Source{}
	routeplanSource.Setup()
	dataaggregator.GlobalAggregator.RegisterSource(routeplanSource)
}
