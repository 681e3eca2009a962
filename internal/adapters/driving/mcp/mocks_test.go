package mcp

import (
	"context"

	"github.com/custodia-labs/sercha-bridge/internal/core/domain"
	"github.com/custodia-labs/sercha-bridge/internal/core/ports/driving"
)

// mockExchanger is a mock implementation of driving.Exchanger.
type mockExchanger struct {
	value   any
	ok      bool
	err     error
	queries []string
}

func (m *mockExchanger) Exchange(_ context.Context, query string) (any, bool, error) {
	m.queries = append(m.queries, query)
	return m.value, m.ok, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(*domain.AppSettings) error { return nil }
func (m *mockSettingsService) Set(string, string) error       { return nil }
func (m *mockSettingsService) Keys() []string                 { return nil }

// Ensure mocks implement interfaces
var (
	_ driving.Exchanger       = (*mockExchanger)(nil)
	_ driving.SettingsService = (*mockSettingsService)(nil)
)
