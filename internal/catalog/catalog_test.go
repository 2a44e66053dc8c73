// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package catalog

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

// embeddedFS copies the embedded data set into a MapFS so individual files
// can be replaced per test.
func embeddedFS(t *testing.T) fstest.MapFS {
	t.Helper()

	out := fstest.MapFS{}
	for _, name := range []string{CitiesFile, PlacesFile, TransportationFile, RecommendationsFile} {
		data, err := fs.ReadFile(embedded, "data/"+name)
		if err != nil {
			t.Fatalf("read embedded %s: %v", name, err)
		}
		out[name] = &fstest.MapFile{Data: data}
	}
	return out
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	cities := c.Cities()
	if len(cities) == 0 {
		t.Fatal("expected at least one city")
	}
	if cities[0].ID != "nyc" {
		t.Errorf("first city = %q, want nyc", cities[0].ID)
	}

	again, _ := Default()
	if again != c {
		t.Error("Default() should return the same catalog")
	}
}

func TestCatalog_Lookups(t *testing.T) {
	t.Parallel()

	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	t.Run("city", func(t *testing.T) {
		t.Parallel()
		city, ok := c.City("paris")
		if !ok || city.Name != "Paris" {
			t.Errorf("City(paris) = %+v, %v", city, ok)
		}
		if _, ok := c.City("atlantis"); ok {
			t.Error("City(atlantis) should not exist")
		}
	})

	t.Run("buildings", func(t *testing.T) {
		t.Parallel()
		buildings, ok := c.Buildings("nyc")
		if !ok || len(buildings) != 5 {
			t.Fatalf("Buildings(nyc) = %d, %v", len(buildings), ok)
		}
		buildings[0].Name = "mutated"
		again, _ := c.Buildings("nyc")
		if again[0].Name == "mutated" {
			t.Error("Buildings should return a copy")
		}
	})

	t.Run("building resolves city", func(t *testing.T) {
		t.Parallel()
		b, ok := c.Building("eiffel-tower")
		if !ok {
			t.Fatal("eiffel-tower not found")
		}
		if b.City != "paris" {
			t.Errorf("City = %q, want paris", b.City)
		}
		if b.Lat == 0 || b.Lng == 0 {
			t.Errorf("coordinates not populated: %+v", b.Coordinates)
		}
	})

	t.Run("transport type from key", func(t *testing.T) {
		t.Parallel()
		p, ok := c.Transport("train")
		if !ok || p.Type != "train" || p.AvgSpeed != 120 {
			t.Errorf("Transport(train) = %+v, %v", p, ok)
		}
	})

	t.Run("mood fallback", func(t *testing.T) {
		t.Parallel()
		p, recognized := c.Mood("romantic")
		if !recognized || p.ID != "romantic" {
			t.Errorf("Mood(romantic) = %q, %v", p.ID, recognized)
		}
		p, recognized = c.Mood("nonexistent")
		if recognized || p.ID != FallbackMood {
			t.Errorf("Mood(nonexistent) = %q, %v", p.ID, recognized)
		}
	})

	t.Run("persona bounds", func(t *testing.T) {
		t.Parallel()
		if _, ok := c.Persona(PersonaCount - 1); !ok {
			t.Error("last persona missing")
		}
		if _, ok := c.Persona(-1); ok {
			t.Error("negative index should fail")
		}
		if _, ok := c.Persona(PersonaCount + 10); ok {
			t.Error("out of range index should fail")
		}
	})

	t.Run("tables complete", func(t *testing.T) {
		t.Parallel()
		for _, tier := range Tiers {
			if _, ok := c.Tier(tier); !ok {
				t.Errorf("tier %q missing", tier)
			}
		}
		for _, b := range TimeBuckets {
			if p, ok := c.TimeOfDay(b); !ok || p.ID != b {
				t.Errorf("time of day %q = %+v", b, p)
			}
		}
		for _, d := range DurationCategories {
			if p, ok := c.Duration(d); !ok || p.ID != d {
				t.Errorf("duration %q = %+v", d, p)
			}
		}
		for _, w := range WeatherConditions {
			if _, ok := c.Weather(w); !ok {
				t.Errorf("weather %q missing", w)
			}
		}
	})

	t.Run("counts", func(t *testing.T) {
		t.Parallel()
		counts := c.Counts()
		if counts["cities"] != len(c.Cities()) {
			t.Errorf("cities count = %d", counts["cities"])
		}
		if counts["places"] == 0 {
			t.Error("expected places")
		}
	})
}

func TestLoad_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		remove  bool
		wantErr string
	}{
		{
			name:    "missing file",
			file:    PlacesFile,
			remove:  true,
			wantErr: "read places.json",
		},
		{
			name:    "malformed json",
			file:    CitiesFile,
			content: `{"cities": [`,
			wantErr: "decode cities.json",
		},
		{
			name: "duplicate building id",
			file: CitiesFile,
			content: `{"cities": [
				{"id": "a", "name": "A", "buildings": [{"id": "x", "name": "X", "lat": 1, "lng": 1}]},
				{"id": "b", "name": "B", "buildings": [{"id": "x", "name": "Y", "lat": 2, "lng": 2}]}
			]}`,
			wantErr: `building id "x"`,
		},
		{
			name:    "duplicate city id",
			file:    CitiesFile,
			content: `{"cities": [{"id": "a", "name": "A"}, {"id": "a", "name": "B"}]}`,
			wantErr: `duplicate city id "a"`,
		},
		{
			name:    "invalid coordinates",
			file:    CitiesFile,
			content: `{"cities": [{"id": "a", "name": "A", "buildings": [{"id": "x", "name": "X", "lat": 95, "lng": 1}]}]}`,
			wantErr: "invalid coordinates",
		},
		{
			name:    "no cities",
			file:    CitiesFile,
			content: `{"cities": []}`,
			wantErr: "no cities defined",
		},
		{
			name: "tier recommends unknown transport",
			file: TransportationFile,
			content: `{
				"transportOptions": {"car": {"avgSpeed": 50, "costPerKm": 0.5, "carbonFootprint": 0.12}},
				"routes": {
					"short": {"recommended": ["car", "hovercraft"]},
					"medium": {"recommended": ["car"]},
					"long": {"recommended": ["car"]},
					"intercontinental": {"recommended": ["car"]}
				}
			}`,
			wantErr: `unknown transport "hovercraft"`,
		},
		{
			name: "zero speed",
			file: TransportationFile,
			content: `{
				"transportOptions": {"car": {"avgSpeed": 0}},
				"routes": {"short": {}, "medium": {}, "long": {}, "intercontinental": {}}
			}`,
			wantErr: "avgSpeed must be positive",
		},
		{
			name: "missing tier",
			file: TransportationFile,
			content: `{
				"transportOptions": {"car": {"avgSpeed": 50}},
				"routes": {"short": {}, "medium": {}, "long": {}}
			}`,
			wantErr: `route tier "intercontinental" missing`,
		},
		{
			name:    "missing reference tables",
			file:    RecommendationsFile,
			content: `{"moodProfiles": {"relaxing": {}}}`,
			wantErr: `fallback mood "adventurous" missing`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := embeddedFS(t)
			if tt.remove {
				delete(fsys, tt.file)
			} else {
				fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.content)}
			}

			_, err := Load(fsys)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	t.Run("directory on disk", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		for name, file := range embeddedFS(t) {
			if err := os.WriteFile(filepath.Join(dir, name), file.Data, 0o600); err != nil {
				t.Fatalf("write %s: %v", name, err)
			}
		}
		c, err := LoadDir(dir)
		if err != nil {
			t.Fatalf("LoadDir() error: %v", err)
		}
		if _, ok := c.Building("big-ben"); !ok {
			t.Error("big-ben not loaded")
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadDir(filepath.Join(t.TempDir(), "absent")); err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "cities.json")
		if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadDir(path); err == nil {
			t.Error("expected error when path is a file")
		}
	})
}
