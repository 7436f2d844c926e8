package location

import (
	"context"
	"fmt"
	"net"

	"github.com/oschwald/maxminddb-golang"
)

// MaxMindProvider resolves addresses against a MaxMind GeoIP2 City database
// loaded into memory.
type MaxMindProvider struct {
	db *maxminddb.Reader
}

// NewMaxMindProvider opens the GeoIP2 City database at path.
func NewMaxMindProvider(path string) (*MaxMindProvider, error) {
	db, err := maxminddb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maxmind database: %w", err)
	}
	return &MaxMindProvider{db: db}, nil
}

// Name returns "maxmind".
func (p *MaxMindProvider) Name() string {
	return "maxmind"
}

// Close releases the database.
func (p *MaxMindProvider) Close() error {
	return p.db.Close()
}

type cityRecord struct {
	City struct {
		Names map[string]string `maxminddb:"names"`
	} `maxminddb:"city"`
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
	Subdivisions []struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"subdivisions"`
	Location struct {
		MetroCode uint16 `maxminddb:"metro_code"`
	} `maxminddb:"location"`
}

// Locate looks ip up in the City database. Addresses the database does not
// know yield no answer rather than an error.
func (p *MaxMindProvider) Locate(_ context.Context, ip net.IP) (*Location, error) {
	if ip == nil {
		return nil, nil
	}

	var rec cityRecord
	if err := p.db.Lookup(ip, &rec); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", ip, err)
	}

	loc := Location{
		Provider: "maxmind",
		Country:  rec.Country.ISOCode,
		City:     rec.City.Names["en"],
		DMA:      rec.Location.MetroCode,
	}
	// Subdivisions are listed least specific first; in the US that is state
	// then county. Only the first is wanted.
	if len(rec.Subdivisions) > 0 {
		loc.Region = rec.Subdivisions[0].ISOCode
	}

	if loc.Country == "" && loc.Region == "" && loc.City == "" && loc.DMA == 0 {
		return nil, nil
	}
	return &loc, nil
}
