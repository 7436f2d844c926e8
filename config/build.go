package config

import (
	"fmt"
	"io"

	"github.com/mozlog-go/mozlog"
	"github.com/mozlog-go/mozlog/internal/hostinfo"
	"github.com/mozlog-go/mozlog/location"
)

// NewLogger builds the MozLog logger described by the configuration,
// writing to w.
func (c *Config) NewLogger(w io.Writer) (*mozlog.Logger, error) {
	level, err := mozlog.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := []mozlog.Option{mozlog.WithLevel(level)}

	if c.Log.Requiretype != "" {
		required, err := mozlog.ParseLevel(c.Log.Requiretype)
		if err != nil {
			return nil, fmt.Errorf("log requiretype: %w", err)
		}
		opts = append(opts, mozlog.WithTypeRequiredForLevel(required))
	}

	if c.Log.Hostname == "ec2" {
		if id := hostinfo.EC2InstanceID(); id != "" {
			opts = append(opts, mozlog.WithHostname(id))
		}
	}

	return mozlog.New(c.App.Name, w, opts...), nil
}

// NewLocationResolver builds the provider chain described by the
// configuration. It returns nil when no location source is configured.
func (c *Config) NewLocationResolver() (*location.Resolver, error) {
	var providers []location.Provider

	if c.Location.Database != "" {
		maxmind, err := location.NewMaxMindProvider(c.Location.Database)
		if err != nil {
			return nil, fmt.Errorf("location database: %w", err)
		}
		providers = append(providers, maxmind)
	}
	if c.Location.Fallback.Enabled() {
		providers = append(providers, location.NewFallbackProvider(location.Location{
			Country: c.Location.Fallback.Country,
			Region:  c.Location.Fallback.Region,
			City:    c.Location.Fallback.City,
		}))
	}

	if len(providers) == 0 {
		return nil, nil
	}
	return location.NewResolver(providers...), nil
}
