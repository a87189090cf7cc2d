// Package config holds the backend's process-wide tunables. Per spec.md §6
// the CLI takes no flags, environment variables, or config file, so this is
// an in-process defaults struct rather than something loaded from disk —
// shaped the way the teacher's Config is shaped, without the YAML loading.
package config

import "strconv"

// Config is the full set of tunables the server needs at startup. There is
// exactly one instance, built by Default, for the lifetime of the process.
type Config struct {
	Server ServerConfig
	Scan   ScanConfig
}

// ServerConfig is the websocket listener's bind address.
type ServerConfig struct {
	Host string
	Port int
}

// Addr returns the "host:port" string suitable for http.ListenAndServe.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// ScanConfig tunes the seed-scanning worker pool.
type ScanConfig struct {
	// BatchSize is the number of consecutive seeds a worker reserves from
	// the shared cursor per round-trip (spec.md §4.4).
	BatchSize int32

	// MaxConcurrency caps the worker count a single Find can request,
	// regardless of the host's CPU count or the client's request.
	MaxConcurrency int
}

// Default returns the configuration this backend runs with. There is no
// override mechanism: spec.md §6 excludes flags, env vars, and config
// files from this CLI's surface.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 62879,
		},
		Scan: ScanConfig{
			BatchSize:      200,
			MaxConcurrency: 256,
		},
	}
}
