package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricing(t *testing.T) {
	svc := NewJSONDataService()
	products, err := svc.Pricing(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.NotEmpty(t, p.Product)
		assert.Greater(t, p.MarketPrice, 0.0)
		// Dealer price always undercuts the published brand price.
		assert.Less(t, p.DealerPrice, p.RockGripPrice)
		assert.Less(t, p.RockGripPrice, p.MarketPrice)
	}
}

func TestFreight(t *testing.T) {
	svc := NewJSONDataService()
	freight, err := svc.Freight(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, freight)

	lucknow, ok := freight["Lucknow"]
	require.True(t, ok)
	assert.Greater(t, lucknow["pickup"], 0.0)
	assert.Greater(t, lucknow["truck10w"], lucknow["pickup"])
}
