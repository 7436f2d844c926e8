package location

import (
	"context"
	"net"
	"strings"
)

// Resolver queries a chain of providers in order and returns the first
// answer.
type Resolver struct {
	providers []Provider
}

// NewResolver creates a resolver over the given providers, queried in
// order.
func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// Resolve derives a location for addr, which may be an IP address or empty.
// Provider failures never fail resolution: the next provider is consulted,
// and when none answers the result is attributed to the "none" provider.
func (r *Resolver) Resolve(ctx context.Context, addr string) Location {
	ip := net.ParseIP(strings.TrimSpace(addr))
	for _, p := range r.providers {
		loc, err := p.Locate(ctx, ip)
		if err != nil || loc == nil {
			continue
		}
		return *loc
	}
	return Location{Provider: "none"}
}
