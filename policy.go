package lifecycle

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy is a declarative lifecycle document, typically loaded from YAML:
//
//	routes:
//	  - method: GET
//	    pattern: /api/v1/users
//	    deprecated:
//	      deprecated_at: "2024-01-15T00:00:00Z"
//	      migration_url: https://api.example.com/docs/migration
//	    sunset:
//	      sunset_at: "2024-06-15T00:00:00Z"
//
// Applying a policy attaches every listed config to a Registry, so
// deployments can drive deprecation from configuration instead of code.
type Policy struct {
	Routes []PolicyRoute `yaml:"routes"`
}

// PolicyRoute declares the lifecycle of one route. Each kind slot is
// optional and independent.
type PolicyRoute struct {
	Method     string  `yaml:"method"`
	Pattern    string  `yaml:"pattern"`
	Deprecated *Config `yaml:"deprecated"`
	Sunset     *Config `yaml:"sunset"`
	Versioned  *Config `yaml:"versioned"`
}

// LoadPolicy reads and parses a YAML policy file.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read policy %s: %w", path, err)
	}
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse policy %s: %w", path, err)
	}
	return &p, nil
}

// ApplyPolicy attaches every config in p to the registry, validating as it
// goes. The first invalid entry fails the whole call; apply policies before
// serving so malformed dates never reach a response.
func (reg *Registry) ApplyPolicy(p *Policy) error {
	for i, route := range p.Routes {
		method := strings.ToUpper(strings.TrimSpace(route.Method))
		if method == "" {
			method = http.MethodGet
		}
		if route.Pattern == "" {
			return fmt.Errorf("lifecycle: policy route %d: pattern is required", i)
		}

		slots := []struct {
			kind Kind
			cfg  *Config
		}{
			{KindDeprecated, route.Deprecated},
			{KindSunset, route.Sunset},
			{KindVersioned, route.Versioned},
		}
		for _, slot := range slots {
			if slot.cfg == nil {
				continue
			}
			if err := reg.Attach(slot.kind, method, route.Pattern, *slot.cfg); err != nil {
				return fmt.Errorf("policy route %s %s: %w", method, route.Pattern, err)
			}
		}
	}
	return nil
}

// LoadPolicyFile loads a YAML policy file and applies it to the registry.
func (reg *Registry) LoadPolicyFile(path string) error {
	p, err := LoadPolicy(path)
	if err != nil {
		return err
	}
	return reg.ApplyPolicy(p)
}
