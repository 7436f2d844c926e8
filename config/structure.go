package config

// Config is the root configuration for a service using the MozLog pipeline.
type Config struct {
	App      AppConfig      `koanf:"app"`
	Server   ServerConfig   `koanf:"server"`
	Log      LogConfig      `koanf:"log"`
	Location LocationConfig `koanf:"location"`
}

// AppConfig identifies the service.
type AppConfig struct {
	// Name is the logger name stamped on every record.
	Name string `koanf:"name" validate:"required"`
	Env  string `koanf:"env" validate:"oneof=development staging production"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string     `koanf:"host" validate:"required"`
	Port int        `koanf:"port" validate:"gte=1,lte=65535"`
	Path PathConfig `koanf:"path"`
}

// PathConfig names the probe endpoints excluded from request summaries.
type PathConfig struct {
	Health string `koanf:"health"`
	Ready  string `koanf:"ready"`
}

// LogConfig controls the MozLog logger.
type LogConfig struct {
	// Level is the minimum level; events below it are discarded.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Requiretype, when set to a level name, makes events at that level or
	// a more urgent one without a message type emit a policy record.
	Requiretype string `koanf:"requiretype" validate:"omitempty,oneof=trace debug info warn error"`

	// Hostname selects the host identity source: "os" for the OS hostname,
	// "ec2" to prefer the EC2 instance id when available.
	Hostname string `koanf:"hostname" validate:"oneof=os ec2"`
}

// LocationConfig controls the optional geolocation resolver.
type LocationConfig struct {
	// Database is the path to a GeoIP2 City database; empty disables
	// MaxMind lookups.
	Database string `koanf:"database"`

	// Fallback supplies fixed place values used when no database answer is
	// available.
	Fallback FallbackConfig `koanf:"fallback"`
}

// FallbackConfig is a fixed location served by the fallback provider. The
// provider is only added to the chain when at least one field is set.
type FallbackConfig struct {
	Country string `koanf:"country" validate:"omitempty,len=2"`
	Region  string `koanf:"region"`
	City    string `koanf:"city"`
}

// Enabled reports whether any fallback value is configured.
func (f FallbackConfig) Enabled() bool {
	return f.Country != "" || f.Region != "" || f.City != ""
}
