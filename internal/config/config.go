package config

// ServerConfig holds configuration for the GoSeek server.
type ServerConfig struct {
	Addr      string // Listen address (default ":8080")
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: text, json
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Workload defaults pre-filled in the web form and used as CLI flag
// defaults. The queue is the worked example the policy tests pin.
const (
	DefaultHead        = 50
	DefaultDiskSize    = 200
	DefaultQueue       = "98,183,37,122,14,124,65,67"
	DefaultSampleCount = 8
)
