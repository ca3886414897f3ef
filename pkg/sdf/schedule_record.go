package sdf

// ScheduleRecord is a single train or flight as returned by a schedule
// provider. Records are value data - they are freely copied into Routes
// and never modified after the fetch layer has produced them.
type ScheduleRecord struct {
	PrimaryIdentifier string `groups:"basic"`
	DisplayName       string `groups:"basic"`

	// OriginRef & DestinationRef are filled in by the fetch layer from its
	// own query parameters so interchange pairings can be checked
	OriginRef      string `groups:"detailed"`
	DestinationRef string `groups:"detailed"`

	DepartureTime string `groups:"basic"`
	ArrivalTime   string `groups:"basic"`

	Fare            float64 `groups:"basic"`
	DurationMinutes int     `groups:"basic"`
	FareClass       string  `groups:"basic"`

	Mode TransportMode `groups:"basic"`
}

// ScheduleBundle holds every schedule list one route plan request needs,
// already materialised by the fetch layer. Any of the lists may be empty.
type ScheduleBundle struct {
	DirectTrains  []ScheduleRecord
	DirectFlights []ScheduleRecord

	// Origin to interchange trains & interchange to destination flights
	HubTrains  []ScheduleRecord
	HubFlights []ScheduleRecord
}
