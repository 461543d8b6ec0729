// File: models/catalog.go
package models

// Product is one row of the published price list.
type Product struct {
	Product       string  `json:"product"`
	MarketPrice   float64 `json:"marketPrice"`
	RockGripPrice float64 `json:"rockGripPrice"`
	DealerPrice   float64 `json:"dealerPrice"`
	MasonCoupon   float64 `json:"masonCoupon"`
}

// Freight maps city -> truck type -> delivery charge.
type Freight map[string]map[string]float64
