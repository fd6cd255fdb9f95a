// Package site defines the external SiteResolver collaborator
// contract: geocoding and building-footprint lookup are explicitly out
// of the core's scope, so the pipeline only depends on this interface.
package site

import (
	"context"

	"idfgen/model"
)

// Resolver resolves a postal address to a Site. Implementations own
// geocoding, footprint lookup, and climate-zone/weather-file
// assignment; none of that lives in the core.
type Resolver interface {
	Resolve(ctx context.Context, address string) (model.Site, error)
}

// Static is a Resolver backed by a fixed, pre-resolved set of sites,
// useful for tests and for callers who already have site data and want
// to skip the network round trip.
type Static struct {
	Sites map[string]model.Site
}

// NewStatic builds a Static resolver from a map of address -> Site.
func NewStatic(sites map[string]model.Site) *Static {
	return &Static{Sites: sites}
}

// Resolve looks address up in the static table.
func (s *Static) Resolve(_ context.Context, address string) (model.Site, error) {
	site, ok := s.Sites[address]
	if !ok {
		return model.Site{}, ErrNotFound{Address: address}
	}
	return site, nil
}

// ErrNotFound is returned by Static when no site is registered for an
// address.
type ErrNotFound struct {
	Address string
}

func (e ErrNotFound) Error() string {
	return "site: no resolved site for address " + e.Address
}
