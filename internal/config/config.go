// Package config provides hierarchical configuration loading for the demo
// server. Precedence: defaults < YAML file < environment variables.
package config

// Config holds all runtime configuration for the lifecycle demo server.
type Config struct {
	Server    Server    `yaml:"server"`
	Logging   Logging   `yaml:"logging"`
	Lifecycle Lifecycle `yaml:"lifecycle"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port string `yaml:"port"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`   // "debug", "info", "warn", "error"
	Service string `yaml:"service"` // value of the "service" attribute on every record
}

// Lifecycle holds header-injection configuration.
type Lifecycle struct {
	Strategy   string `yaml:"strategy"`    // "middleware" | "route_class" | "manual"
	PolicyFile string `yaml:"policy_file"` // optional YAML lifecycle policy; empty disables
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Server: Server{
			Port: "8080",
		},
		Logging: Logging{
			Level:   "info",
			Service: "lifecycle-demo",
		},
		Lifecycle: Lifecycle{
			Strategy: "middleware",
		},
	}
}
