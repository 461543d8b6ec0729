// Package location loads and normalizes the bundled states-and-cities
// dataset, including the operational-city allow-list.
package location

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"rockgrip/models"
)

//go:embed locations.json
var locationsJSON []byte

// allowedKey is the distinguished entry holding the operational cities.
const allowedKey = "AllowedCities"

// Load parses and normalizes the embedded dataset. Called once at startup;
// the returned dataset is read-only afterwards.
func Load() (*models.LocationDataset, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(locationsJSON, &raw); err != nil {
		return nil, fmt.Errorf("locations: parse: %w", err)
	}
	return Normalize(raw)
}

// Normalize turns the raw JSON mapping into a LocationDataset, rejecting
// malformed entries instead of branching on shapes at every consumer.
// Every value must be an array of strings; the AllowedCities entry is
// lifted out of the state map.
func Normalize(raw map[string]json.RawMessage) (*models.LocationDataset, error) {
	dataset := &models.LocationDataset{
		States: make(map[string][]string, len(raw)),
	}

	for key, value := range raw {
		var cities []string
		if err := json.Unmarshal(value, &cities); err != nil {
			return nil, fmt.Errorf("locations: entry %q is not a string array: %w", key, err)
		}
		if key == allowedKey {
			dataset.AllowedCities = cities
			continue
		}
		if len(cities) == 0 {
			return nil, fmt.Errorf("locations: state %q has no cities", key)
		}
		dataset.States[key] = cities
	}

	// Every allowed city must exist in some state's city list.
	for _, city := range dataset.AllowedCities {
		if !knownCity(dataset.States, city) {
			return nil, fmt.Errorf("locations: allowed city %q not present in any state", city)
		}
	}

	return dataset, nil
}

// StateNames returns the closed state set in sorted order.
func StateNames(d *models.LocationDataset) []string {
	names := make([]string, 0, len(d.States))
	for name := range d.States {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func knownCity(states map[string][]string, city string) bool {
	for _, cities := range states {
		for _, c := range cities {
			if c == city {
				return true
			}
		}
	}
	return false
}
