package server

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ironsheep/dem-relief-mcp/internal/relief"
)

// Environment variables read by LoadConfig.
const (
	EnvLogLevel = "RELIEF_MCP_LOG_LEVEL"
	EnvCellSize = "RELIEF_CELL_SIZE"
	EnvAzimuth  = "RELIEF_AZIMUTH"
	EnvAltitude = "RELIEF_ALTITUDE"
)

// Config holds server-wide settings.
type Config struct {
	// Defaults fill in cell size and light arguments a tool call omits.
	Defaults relief.Options

	// Debug enables per-request logging.
	Debug bool
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{Defaults: relief.DefaultOptions()}
}

// LoadConfig builds a Config from the environment. Unset variables keep their
// defaults; unparsable or invalid values are reported as errors.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	cfg.Debug = os.Getenv(EnvLogLevel) == "debug"

	for _, v := range []struct {
		name string
		dst  *float64
	}{
		{EnvCellSize, &cfg.Defaults.CellSize},
		{EnvAzimuth, &cfg.Defaults.Light.AzimuthDeg},
		{EnvAltitude, &cfg.Defaults.Light.AltitudeDeg},
	} {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", v.name, err)
		}
		*v.dst = f
	}

	if err := cfg.Defaults.Validate(); err != nil {
		return cfg, fmt.Errorf("default options: %w", err)
	}
	return cfg, nil
}
