// Package location resolves client IP addresses to coarse place information
// for logging. Resolution queries a chain of providers in order and takes
// the first answer; lookups are pure and perform no per-query I/O.
package location

// Location is the place information a provider produces.
type Location struct {
	// Country in ISO 3166-1 alpha-2 format, such as "MX" for Mexico.
	Country string `json:"country,omitempty"`

	// Region in ISO 3166-2 format, such as "QC" for Quebec (with country
	// "CA") or "TX" for Texas (with country "US").
	Region string `json:"region,omitempty"`

	// City by name, such as "Portland" or "Berlin".
	City string `json:"city,omitempty"`

	// DMA is the Nielsen Designated Market Area code. Only defined in the
	// US.
	DMA uint16 `json:"dma,omitempty"`

	// Provider names the provider that produced this location.
	Provider string `json:"provider"`
}

// Fields returns the location as log fields, omitting unset values.
func (l Location) Fields() map[string]any {
	fields := map[string]any{"location_provider": l.Provider}
	if l.Country != "" {
		fields["country"] = l.Country
	}
	if l.Region != "" {
		fields["region"] = l.Region
	}
	if l.City != "" {
		fields["city"] = l.City
	}
	if l.DMA != 0 {
		fields["dma"] = l.DMA
	}
	return fields
}
