package routeplanner

import (
	"github.com/rs/zerolog/log"
	"github.com/skyrail/skyrail/pkg/sdf"
)

// MinLayoverMinutes is the smallest interchange gap that still leaves time
// to get off the train, cross to the airport terminal and clear check-in
// and security.
const MinLayoverMinutes = 90

// ValidConnection reports whether the train and flight can be chained into
// one bookable journey through the interchange. It is false when the
// flight departs before the train arrives or when the layover is under
// MinLayoverMinutes. An error only occurs when either leg carries a
// timestamp that fails to parse.
//
// Both records must already be bound to the same interchange - the caller
// fetches them that way - so a mismatch is a caller bug.
func ValidConnection(train sdf.ScheduleRecord, flight sdf.ScheduleRecord) (bool, error) {
	if train.DestinationRef != "" && flight.OriginRef != "" && train.DestinationRef != flight.OriginRef {
		log.Panic().
			Str("train", train.PrimaryIdentifier).
			Str("flight", flight.PrimaryIdentifier).
			Str("trainDestination", train.DestinationRef).
			Str("flightOrigin", flight.OriginRef).
			Msg("Connection checked against mismatched interchange stops")
	}

	layover, err := layoverMinutes(train, flight)
	if err != nil {
		return false, err
	}

	return layover >= MinLayoverMinutes, nil
}
