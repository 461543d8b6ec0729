// File: models/location.go
package models

// LocationDataset is the normalized states-and-cities reference data.
// States maps each state to its ordered city list; AllowedCities is the
// set of cities the business currently serves. Read-only after startup.
type LocationDataset struct {
	States        map[string][]string `json:"states"`
	AllowedCities []string            `json:"allowedCities"`
}

// CitiesOf returns the city list for a state, or nil for an unknown state.
func (d *LocationDataset) CitiesOf(state string) []string {
	return d.States[state]
}

// HasState reports whether state is part of the closed state set.
func (d *LocationDataset) HasState(state string) bool {
	_, ok := d.States[state]
	return ok
}
