// Package domain defines the core types of sercha-bridge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines:
//
//   - BridgeStats: counters describing the search bridge
//   - AppSettings: fetcher selection and the search endpoint
//   - Repository: a read-only projection of a GitHub search response
//
// Request and response messages themselves are plain Go values: a string
// query travels to the bridge and an untyped JSON value travels back.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
