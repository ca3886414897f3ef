package dataaggregator

import (
	"errors"
	"reflect"

	"github.com/rs/zerolog/log"
	"github.com/skyrail/skyrail/pkg/dataaggregator/source"
)

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

func (a *Aggregator) RegisterSource(dataSource DataSource) {
	a.Sources = append(a.Sources, dataSource)

	log.Debug().Str("name", dataSource.GetName()).Msg("Registering new Data Source")
}

// Lookup asks each registered source that supports T in turn. A source
// answering with UnsupportedSourceError passes the query along to the
// next one.
func Lookup[T any](query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, dataSource := range GlobalAggregator.Sources {
		matches := false

		for _, supportedType := range dataSource.Supports() {
			supported := supportedType
			if supported.Kind() == reflect.Pointer {
				supported = supported.Elem()
			}

			if lookupType == supported {
				matches = true
				break
			}
		}

		if matches {
			returnValue, returnError := dataSource.Lookup(query)

			if errors.Is(returnError, source.UnsupportedSourceError) {
				continue
			}

			if returnValue == nil {
				return empty, returnError
			}

			return returnValue.(T), returnError
		}
	}

	return empty, errors.New("failed to find a matching Data Source for type")
}
