package driven

// RequestPort is the application's outbound channel of search requests.
// The bridge subscribes to it; the application sends on it.
type RequestPort interface {
	// Subscribe registers fn for every request sent on the port.
	// The returned function removes the subscription.
	Subscribe(fn func(query string)) (unsubscribe func())
}

// ResponsePort is the application's inbound channel of decoded responses.
// The bridge sends on it; the application subscribes to it.
type ResponsePort interface {
	// Send delivers value to the application.
	Send(value any)
}
