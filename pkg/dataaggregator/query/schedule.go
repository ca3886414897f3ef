package query

import (
	"time"

	"github.com/skyrail/skyrail/pkg/sdf"
)

// Schedule asks for every service of one mode running between two cities
// on a given day.
type Schedule struct {
	Origin      string
	Destination string
	Date        time.Time
	Mode        sdf.TransportMode
}
