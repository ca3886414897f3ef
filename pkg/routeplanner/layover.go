package routeplanner

import (
	"github.com/skyrail/skyrail/pkg/sdf"
	"github.com/skyrail/skyrail/pkg/travelclock"
)

// layoverMinutes is the interchange gap between the train arriving and the
// flight departing. Negative when the flight leaves before the train gets
// in. ValidConnection and BuildMultiModalRoute each compute this
// independently and must always agree.
func layoverMinutes(train sdf.ScheduleRecord, flight sdf.ScheduleRecord) (int, error) {
	trainArrival, err := travelclock.Parse(train.ArrivalTime)
	if err != nil {
		return 0, err
	}

	flightDeparture, err := travelclock.Parse(flight.DepartureTime)
	if err != nil {
		return 0, err
	}

	if flightDeparture.Before(trainArrival) {
		return -travelclock.DurationMinutes(trainArrival, flightDeparture), nil
	}

	return travelclock.DurationMinutes(flightDeparture, trainArrival), nil
}
