package settings_repo

import (
	"context"

	"github.com/Khaled152/tutor-kashier-integration/internal/domain/gateway"
)

// Static serves gateway settings from an in-memory map. Useful for
// single-tenant deployments configured through the environment and in tests.
type Static struct {
	fields map[string]gateway.Fields
}

func NewStatic(fields map[string]gateway.Fields) *Static {
	return &Static{fields: fields}
}

// GatewaySettings implements gateway.Settings.
func (s *Static) GatewaySettings(_ context.Context, gatewayKey string) (gateway.Fields, error) {
	stored, ok := s.fields[gatewayKey]
	if !ok {
		return gateway.Fields{}, nil
	}

	out := gateway.Fields{}
	for name, value := range stored {
		out[name] = value
	}
	return out, nil
}
