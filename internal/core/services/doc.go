// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven ports
// (adapters).
//
//   - SearchBridge: request port -> Fetcher -> JSON decode -> response port
//   - ExchangeService: one bridged round trip over a private runtime
//   - SettingsService: typed access to the config store
//
// Services are pure Go with no CGO or transport dependencies.
package services
