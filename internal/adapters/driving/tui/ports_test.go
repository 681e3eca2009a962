package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sercha-bridge/internal/runtime"
)

func TestPorts_Validate(t *testing.T) {
	rt := runtime.New()

	tests := []struct {
		name  string
		ports *Ports
		want  error
	}{
		{name: "nil", ports: nil, want: ErrInvalidPorts},
		{name: "missing requests", ports: &Ports{Responses: rt.SearchResponses()}, want: ErrMissingRequestPort},
		{name: "missing responses", ports: &Ports{Requests: rt.SearchRequests()}, want: ErrMissingResponsePort},
		{name: "settings optional", ports: &Ports{Requests: rt.SearchRequests(), Responses: rt.SearchResponses()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
