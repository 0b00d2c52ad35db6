// Package manifest loads declarative route tables from YAML. A
// manifest names each pattern so tools can report on tables without
// compiled-in handlers:
//
//	routes:
//	  - name: user-detail
//	    pattern: /users/:id
//	  - name: fallback
//	    pattern: "*"
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wayfind-dev/wayfind/pkg/route"
)

// Manifest is a named route table.
type Manifest struct {
	Routes []Route `yaml:"routes"`
}

// Route is one named pattern.
type Route struct {
	// Name identifies the route in reports and handler registries.
	Name string `yaml:"name"`

	// Pattern is the route pattern string.
	Pattern string `yaml:"pattern"`
}

// Parse decodes a manifest from YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("manifest: parsing YAML: %w", err)
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Patterns returns the pattern strings in manifest order.
func (m *Manifest) Patterns() []string {
	out := make([]string, len(m.Routes))
	for i, r := range m.Routes {
		out[i] = r.Pattern
	}
	return out
}

// Validate checks the manifest structurally (non-empty, unique names)
// and runs the route validator over its patterns. Pattern defects come
// back as a *route.MultiValidationError.
func (m *Manifest) Validate() error {
	if len(m.Routes) == 0 {
		return fmt.Errorf("manifest: no routes defined")
	}

	seen := make(map[string]bool, len(m.Routes))
	for _, r := range m.Routes {
		if r.Name == "" {
			return fmt.Errorf("manifest: route with pattern %q has no name", r.Pattern)
		}
		if seen[r.Name] {
			return fmt.Errorf("manifest: duplicate route name %q", r.Name)
		}
		seen[r.Name] = true
	}

	return route.NewValidator(m.Patterns()).Validate()
}

// Router builds a Router whose handlers yield the route names.
func (m *Manifest) Router() *route.Router[string] {
	r := route.NewRouter[string]()
	for _, def := range m.Routes {
		name := def.Name
		r.Handle(def.Pattern, func(ctx *route.Context) string {
			return name
		})
	}
	return r
}
