package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate; every tick advances by TickSeconds.
	TPS         = 60
	TickSeconds = 1.0 / TPS
)
