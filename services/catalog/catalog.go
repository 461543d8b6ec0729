// Package catalog serves the published price list and freight charges
// from the bundled JSON datasets.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"rockgrip/models"
)

//go:embed pricing.json
var pricingJSON []byte

//go:embed freight.json
var freightJSON []byte

// DataService exposes the catalog datasets. The JSON implementation is the
// default; a sheet- or database-backed one can replace it without touching
// the handlers.
type DataService interface {
	Pricing(ctx context.Context) ([]models.Product, error)
	Freight(ctx context.Context) (models.Freight, error)
}

// JSONDataService parses the embedded datasets once and serves them from
// memory afterwards.
type JSONDataService struct {
	once    sync.Once
	pricing []models.Product
	freight models.Freight
	loadErr error
}

func NewJSONDataService() *JSONDataService {
	return &JSONDataService{}
}

func (s *JSONDataService) load() {
	if err := json.Unmarshal(pricingJSON, &s.pricing); err != nil {
		s.loadErr = fmt.Errorf("catalog: parse pricing: %w", err)
		return
	}
	if err := json.Unmarshal(freightJSON, &s.freight); err != nil {
		s.loadErr = fmt.Errorf("catalog: parse freight: %w", err)
	}
}

func (s *JSONDataService) Pricing(ctx context.Context) ([]models.Product, error) {
	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.pricing, nil
}

func (s *JSONDataService) Freight(ctx context.Context) (models.Freight, error) {
	s.once.Do(s.load)
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.freight, nil
}
