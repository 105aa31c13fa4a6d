// ABOUTME: Tests for config defaults, file round trip, and backend selection.
// ABOUTME: Uses temp paths; never touches the real XDG directories.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	if got := c.GetBackend(); got != "badger" {
		t.Errorf("GetBackend = %s, want badger", got)
	}
	if got := c.GetDataDir(); got == "" {
		t.Error("expected a default data dir")
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	c, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if c.Backend != "" || c.DataDir != "" {
		t.Errorf("expected empty config, got %+v", c)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caltrack", "config.json")

	c := &Config{Backend: "sqlite", DataDir: "/tmp/caltrack-data"}
	if err := c.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Backend != "sqlite" || got.DataDir != "/tmp/caltrack-data" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenStoreBackends(t *testing.T) {
	dir := t.TempDir()

	for _, backend := range []string{"badger", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			c := &Config{Backend: backend, DataDir: filepath.Join(dir, backend)}
			s, err := c.OpenStore()
			if err != nil {
				t.Fatalf("OpenStore: %v", err)
			}
			defer s.Close()

			// A fresh store must serve empty reads.
			if _, err := s.CustomFoods(); err != nil {
				t.Errorf("CustomFoods on fresh store: %v", err)
			}
		})
	}

	c := &Config{Backend: "redis"}
	if _, err := c.OpenStore(); err == nil {
		t.Error("expected error for unknown backend")
	}
}
