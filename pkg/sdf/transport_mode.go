package sdf

type TransportMode string

const (
	TransportModeTrain   TransportMode = "Train"
	TransportModeFlight                = "Flight"
	TransportModeUnknown               = "UNKNOWN"
)
