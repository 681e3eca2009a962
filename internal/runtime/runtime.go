package runtime

// Port names.
const (
	// SearchRequestsPort carries search request strings out of the application.
	SearchRequestsPort = "searchRequests"

	// SearchResponsesPort carries decoded JSON responses into the application.
	SearchResponsesPort = "searchResponses"
)

// Runtime is an explicitly constructed application handle.
// Each Runtime owns its own pair of ports, so independent runtimes never
// see each other's traffic.
type Runtime struct {
	searchRequests  *Port[string]
	searchResponses *Port[any]
}

// New creates a runtime with fresh ports.
func New() *Runtime {
	return &Runtime{
		searchRequests:  NewPort[string](SearchRequestsPort),
		searchResponses: NewPort[any](SearchResponsesPort),
	}
}

// SearchRequests returns the outbound request port.
func (r *Runtime) SearchRequests() *Port[string] {
	return r.searchRequests
}

// SearchResponses returns the inbound response port.
func (r *Runtime) SearchResponses() *Port[any] {
	return r.searchResponses
}
