package location

import (
	"context"
	"net"
)

// Provider is one way of deriving a location from a client address.
type Provider interface {
	// Name identifies the provider in diagnostics.
	Name() string

	// Locate resolves ip to a location. A nil location with a nil error
	// means the provider has no answer for this address; ip may be nil
	// when the caller could not extract an address at all.
	Locate(ctx context.Context, ip net.IP) (*Location, error)
}

// FallbackProvider answers every query with a fixed location. Place it last
// in a resolver chain to supply defaults when no real provider answers.
type FallbackProvider struct {
	fallback Location
}

// NewFallbackProvider creates a provider that always returns loc, attributed
// to the "fallback" provider.
func NewFallbackProvider(loc Location) *FallbackProvider {
	loc.Provider = "fallback"
	return &FallbackProvider{fallback: loc}
}

// Name returns "fallback".
func (p *FallbackProvider) Name() string {
	return "fallback"
}

// Locate returns the fixed fallback location regardless of address.
func (p *FallbackProvider) Locate(_ context.Context, _ net.IP) (*Location, error) {
	loc := p.fallback
	return &loc, nil
}
