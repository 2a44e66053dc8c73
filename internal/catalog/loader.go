// Tripweaver - Trip Planning Route and Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripweaver

package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tripweaver/internal/geo"
	"github.com/tomtom215/tripweaver/internal/models"
)

// Data file names inside a catalog directory.
const (
	CitiesFile          = "cities.json"
	PlacesFile          = "places.json"
	TransportationFile  = "transportation.json"
	RecommendationsFile = "ai-recommendations.json"
)

//go:embed data/*.json
var embedded embed.FS

type citiesDoc struct {
	Cities []models.City `json:"cities"`
}

type placesDoc struct {
	Places map[string]models.CityPlaces `json:"places"`
}

type transportDoc struct {
	TransportOptions map[string]models.TransportProfile `json:"transportOptions"`
	Routes           map[string]models.RouteTierConfig  `json:"routes"`
}

type recommendationsDoc struct {
	MoodProfiles map[string]models.MoodProfile       `json:"moodProfiles"`
	TimeOfDay    map[string]models.TimeOfDayProfile  `json:"timeOfDayRecommendations"`
	Durations    map[string]models.DurationProfile   `json:"durationRecommendations"`
	Personas     []models.Persona                    `json:"aiPersonas"`
	Weather      map[string]models.WeatherAdaptation `json:"weatherAdaptations"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	errDefault     error
)

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, errDefault = LoadDir("")
	})
	return defaultCatalog, errDefault
}

// LoadDir loads a catalog from a directory on disk. An empty dir selects
// the embedded data set.
func LoadDir(dir string) (*Catalog, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("open embedded catalog: %w", err)
		}
		return Load(sub)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog dir %q is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads the four catalog files from fsys, validates them and builds
// the lookup indexes.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		cities    citiesDoc
		places    placesDoc
		transport transportDoc
		reference recommendationsDoc
	)
	for name, dst := range map[string]any{
		CitiesFile:          &cities,
		PlacesFile:          &places,
		TransportationFile:  &transport,
		RecommendationsFile: &reference,
	} {
		if err := decodeFile(fsys, name, dst); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		cities:    cities.Cities,
		cityIndex: make(map[string]int, len(cities.Cities)),
		buildings: make(map[string]models.RouteEndpoint),
		places:    places.Places,
		transport: transport.TransportOptions,
		tiers:     transport.Routes,
		moods:     reference.MoodProfiles,
		timeOfDay: reference.TimeOfDay,
		durations: reference.Durations,
		personas:  reference.Personas,
		weather:   reference.Weather,
	}
	if c.places == nil {
		c.places = map[string]models.CityPlaces{}
	}

	for key, p := range c.transport {
		p.Type = key
		c.transport[key] = p
	}
	for key, p := range c.moods {
		p.ID = key
		c.moods[key] = p
	}
	for key, p := range c.timeOfDay {
		p.ID = key
		c.timeOfDay[key] = p
	}
	for key, p := range c.durations {
		p.ID = key
		c.durations[key] = p
	}

	if err := c.index(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// index builds the city and building lookups, rejecting duplicate ids.
func (c *Catalog) index() error {
	var errs []error
	for i, city := range c.cities {
		if city.ID == "" {
			errs = append(errs, fmt.Errorf("city at position %d has no id", i))
			continue
		}
		if _, dup := c.cityIndex[city.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate city id %q", city.ID))
			continue
		}
		c.cityIndex[city.ID] = i

		for _, b := range city.Buildings {
			if b.ID == "" {
				errs = append(errs, fmt.Errorf("city %q has a building without id", city.ID))
				continue
			}
			if prev, dup := c.buildings[b.ID]; dup {
				errs = append(errs, fmt.Errorf("building id %q used by both %q and %q", b.ID, prev.City, city.ID))
				continue
			}
			if !geo.Valid(b.Coordinates) {
				errs = append(errs, fmt.Errorf("building %q has invalid coordinates %v,%v", b.ID, b.Lat, b.Lng))
			}
			c.buildings[b.ID] = models.RouteEndpoint{Building: b, City: city.ID}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return nil
}

// validate checks that every table the planners index into is populated.
func (c *Catalog) validate() error {
	var errs []error

	if len(c.cities) == 0 {
		errs = append(errs, errors.New("no cities defined"))
	}

	for key, p := range c.transport {
		if p.AvgSpeed <= 0 {
			errs = append(errs, fmt.Errorf("transport %q: avgSpeed must be positive", key))
		}
		if p.CostPerKm < 0 || p.CarbonFootprint < 0 {
			errs = append(errs, fmt.Errorf("transport %q: cost and carbon must not be negative", key))
		}
	}

	for _, tier := range Tiers {
		cfg, ok := c.tiers[tier]
		if !ok {
			errs = append(errs, fmt.Errorf("route tier %q missing", tier))
			continue
		}
		for _, t := range cfg.Recommended {
			if _, ok := c.transport[t]; !ok {
				errs = append(errs, fmt.Errorf("route tier %q recommends unknown transport %q", tier, t))
			}
		}
	}

	if _, ok := c.moods[FallbackMood]; !ok {
		errs = append(errs, fmt.Errorf("fallback mood %q missing", FallbackMood))
	}
	for _, bucket := range TimeBuckets {
		if _, ok := c.timeOfDay[bucket]; !ok {
			errs = append(errs, fmt.Errorf("time of day %q missing", bucket))
		}
	}
	for _, category := range DurationCategories {
		d, ok := c.durations[category]
		if !ok {
			errs = append(errs, fmt.Errorf("duration %q missing", category))
			continue
		}
		if d.MinStops < 0 || d.MaxStops < d.MinStops {
			errs = append(errs, fmt.Errorf("duration %q: invalid stop range %d-%d", category, d.MinStops, d.MaxStops))
		}
	}
	if len(c.personas) < PersonaCount {
		errs = append(errs, fmt.Errorf("need %d personas, have %d", PersonaCount, len(c.personas)))
	}
	for _, condition := range WeatherConditions {
		if _, ok := c.weather[condition]; !ok {
			errs = append(errs, fmt.Errorf("weather adaptation %q missing", condition))
		}
	}

	return errors.Join(errs...)
}
