package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wayfind-dev/wayfind/pkg/route"
)

const sampleYAML = `
routes:
  - name: home
    pattern: /
  - name: user-detail
    pattern: /users/:id
  - name: fallback
    pattern: "*"
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Routes) != 3 {
		t.Fatalf("expected 3 routes, got %d", len(m.Routes))
	}
	if m.Routes[1].Name != "user-detail" || m.Routes[1].Pattern != "/users/:id" {
		t.Errorf("route 1 = %+v", m.Routes[1])
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("routes: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := m.Patterns(); len(got) != 3 || got[2] != "*" {
		t.Errorf("patterns = %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateStructural(t *testing.T) {
	tests := []struct {
		name string
		m    Manifest
	}{
		{"empty", Manifest{}},
		{"unnamed", Manifest{Routes: []Route{{Pattern: "/a"}}}},
		{"duplicate name", Manifest{Routes: []Route{
			{Name: "x", Pattern: "/a"},
			{Name: "x", Pattern: "/b"},
		}}},
	}

	for _, tt := range tests {
		if err := tt.m.Validate(); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestValidatePatternConflicts(t *testing.T) {
	m := Manifest{Routes: []Route{
		{Name: "a", Pattern: "/users/:id"},
		{Name: "b", Pattern: "/users/:uid"},
	}}

	err := m.Validate()
	var multi *route.MultiValidationError
	if !errors.As(err, &multi) {
		t.Fatalf("expected *route.MultiValidationError, got %v", err)
	}
}

func TestRouter(t *testing.T) {
	m, err := Parse([]byte(sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	r := m.Router()
	match, err := r.Match("/users/7")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got := match.Handler(nil); got != "user-detail" {
		t.Errorf("handler yielded %q, want user-detail", got)
	}

	match, err = r.Match("/completely/unknown")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if got := match.Handler(nil); got != "fallback" {
		t.Errorf("handler yielded %q, want fallback", got)
	}
}
