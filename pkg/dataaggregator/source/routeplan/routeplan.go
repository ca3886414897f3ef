package routeplan

import (
	"reflect"

	"github.com/skyrail/skyrail/pkg/dataaggregator/query"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source/cachedresults"
	"github.com/skyrail/skyrail/pkg/redis_client"
	"github.com/skyrail/skyrail/pkg/sdf"
)

type Source struct {
	CachedResults *cachedresults.Cache
}

func (s *Source) Setup() {
	if redis_client.Client == nil {
		return
	}

	s.CachedResults = &cachedresults.Cache{}
	s.CachedResults.Setup()
}

func (s Source) GetName() string {
	return "Route Planner"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(&sdf.RankedResult{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.RoutePlan:
		return s.RoutePlanQuery(q.(query.RoutePlan))
	default:
		return nil, source.UnsupportedSourceError
	}
}
