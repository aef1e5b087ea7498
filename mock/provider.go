package mock

import (
	"fmt"

	"bfbb/gameinterface"
	"bfbb/gamevar"
)

// Provider is a gameinterface.Provider over a mock backend. Hooking a mock
// always succeeds while the simulated process is available; tests flip
// availability to exercise hook-failure paths.
type Provider struct {
	backend     *Backend
	table       gameinterface.AddressTable
	unavailable bool
}

// NewProvider returns a provider for backend using the standard Gamecube
// address table.
func NewProvider(backend *Backend) *Provider {
	return NewProviderWithTable(backend, gameinterface.GCN)
}

// NewProviderWithTable returns a provider binding interfaces with a custom
// address table.
func NewProviderWithTable(backend *Backend, table gameinterface.AddressTable) *Provider {
	return &Provider{backend: backend, table: table}
}

// SetAvailable controls whether the simulated process can be discovered.
func (p *Provider) SetAvailable(available bool) {
	p.unavailable = !available
}

// Hook attaches to the mock backend, re-hooking it if a previous interface
// observed a detach.
func (p *Provider) Hook() (*gameinterface.Interface, error) {
	if p.backend == nil || p.unavailable {
		return nil, fmt.Errorf("mock process not available: %w", gamevar.ErrHookingFailed)
	}
	p.backend.Rehook()
	return gameinterface.New(p.backend, p.table), nil
}
