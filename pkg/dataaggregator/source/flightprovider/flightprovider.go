package flightprovider

import (
	"reflect"

	"github.com/skyrail/skyrail/pkg/dataaggregator/query"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source"
	"github.com/skyrail/skyrail/pkg/sdf"
)

type Source struct {
	Endpoint string
	AppKey   string
}

func (s Source) GetName() string {
	return "Flight Schedule Provider"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]sdf.ScheduleRecord{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Schedule:
		scheduleQuery := q.(query.Schedule)

		if s.Endpoint == "" || scheduleQuery.Mode != sdf.TransportModeFlight {
			return nil, source.UnsupportedSourceError
		}

		return s.ScheduleQuery(scheduleQuery)
	default:
		return nil, source.UnsupportedSourceError
	}
}
