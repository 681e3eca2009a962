package domain

// BridgeStats describes the activity of a search bridge since it was created.
type BridgeStats struct {
	// Requested counts queries received from the request port.
	Requested int64

	// Published counts values sent on the response port.
	Published int64

	// Dropped counts queries that ended without a publish
	// (fetch failure, decode failure, or no response port).
	Dropped int64

	// InFlight is the number of queries still being fetched.
	InFlight int64
}
