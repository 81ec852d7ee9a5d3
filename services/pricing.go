package services

import "math"

// Delivery is free above this items subtotal, otherwise a flat fee applies.
const (
	freeDeliveryThreshold = 200.0
	flatDeliveryFee       = 50.0
	taxRate               = 0.15
)

// PricedItem is the slice of a cart line the pricing engine needs.
type PricedItem struct {
	Price    float64
	Quantity int
}

// Prices holds the four derived charge fields of an order.
type Prices struct {
	Items    float64
	Delivery float64
	Tax      float64
	Total    float64
}

// Round2 rounds to 2 decimal places, half-up.
func Round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// ComputePrices derives the charge fields from the cart lines. It is a pure
// function and is invoked identically at review time and at order-creation
// time so both always agree.
func ComputePrices(items []PricedItem) Prices {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}

	itemsPrice := Round2(sum)

	delivery := flatDeliveryFee
	if itemsPrice > freeDeliveryThreshold {
		delivery = 0
	}

	tax := Round2(itemsPrice * taxRate)

	return Prices{
		Items:    itemsPrice,
		Delivery: delivery,
		Tax:      tax,
		Total:    Round2(itemsPrice + tax + delivery),
	}
}
