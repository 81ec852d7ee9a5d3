package services_test

import (
	"testing"

	"github.com/itsraghul/hearty-foods/services"
	"github.com/stretchr/testify/assert"
)

func TestComputePrices_SumInvariant(t *testing.T) {
	carts := [][]services.PricedItem{
		{},
		{{Price: 0.01, Quantity: 1}},
		{{Price: 33.33, Quantity: 3}},
		{{Price: 19.99, Quantity: 7}, {Price: 5.25, Quantity: 2}},
		{{Price: 120, Quantity: 2}, {Price: 0.10, Quantity: 9}},
	}

	for _, items := range carts {
		p := services.ComputePrices(items)
		assert.Equal(t, services.Round2(p.Items+p.Tax+p.Delivery), p.Total)
	}
}

func TestComputePrices_DeliveryBoundary(t *testing.T) {
	// itemsPrice exactly 200 still pays the flat fee
	p := services.ComputePrices([]services.PricedItem{{Price: 200, Quantity: 1}})
	assert.Equal(t, 50.0, p.Delivery)

	// one cent over the threshold rides free
	p = services.ComputePrices([]services.PricedItem{{Price: 200.01, Quantity: 1}})
	assert.Equal(t, 0.0, p.Delivery)
}

func TestComputePrices_TaxRate(t *testing.T) {
	p := services.ComputePrices([]services.PricedItem{{Price: 100, Quantity: 1}})
	assert.Equal(t, 15.0, p.Tax)
}

func TestComputePrices_LargeCart(t *testing.T) {
	p := services.ComputePrices([]services.PricedItem{{Price: 120, Quantity: 2}})

	assert.Equal(t, 240.0, p.Items)
	assert.Equal(t, 0.0, p.Delivery)
	assert.Equal(t, 36.0, p.Tax)
	assert.Equal(t, 276.0, p.Total)
}

func TestComputePrices_SmallCart(t *testing.T) {
	p := services.ComputePrices([]services.PricedItem{{Price: 50, Quantity: 1}})

	assert.Equal(t, 50.0, p.Items)
	assert.Equal(t, 50.0, p.Delivery)
	assert.Equal(t, 7.5, p.Tax)
	assert.Equal(t, 107.5, p.Total)
}

func TestComputePrices_EmptyCart(t *testing.T) {
	p := services.ComputePrices(nil)

	assert.Equal(t, 0.0, p.Items)
	assert.Equal(t, 50.0, p.Delivery)
	assert.Equal(t, 0.0, p.Tax)
	assert.Equal(t, 50.0, p.Total)
}

func TestRound2_HalfUp(t *testing.T) {
	// .125 and .375 are exact in binary, so the half case is genuine
	assert.Equal(t, 0.13, services.Round2(0.125))
	assert.Equal(t, 0.38, services.Round2(0.375))
	assert.Equal(t, 1.23, services.Round2(1.234))
	assert.Equal(t, 0.0, services.Round2(0))
}
