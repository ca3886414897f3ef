package localtimetable

import (
	"reflect"

	"github.com/skyrail/skyrail/pkg/dataaggregator/query"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source"
	"github.com/skyrail/skyrail/pkg/sdf"
)

// Source answers schedule queries from the locally imported timetable
// collection. It registers after the remote providers so it only serves
// the queries they gave up on.
type Source struct {
}

func (s Source) GetName() string {
	return "Local Timetable"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]sdf.ScheduleRecord{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Schedule:
		return s.ScheduleQuery(q.(query.Schedule))
	default:
		return nil, source.UnsupportedSourceError
	}
}
