package rules

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidShippingMethod = errors.New("invalid shipping method")

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

// shippingTiers holds the cost for total weight <=5, <=10 and above.
var shippingTiers = map[ShippingMethod][3]float64{
	ShippingStandard: {10, 15, 20},
	ShippingExpress:  {20, 30, 40},
}

type OrderItem struct {
	Quantity int
	Price    float64
}

type ShipmentItem struct {
	Weight float64
}

// CalculateTotalDiscount returns the discount amount, not the discounted
// total.
func CalculateTotalDiscount(total float64) float64 {
	var rate float64
	switch {
	case total > 500:
		rate = 0.2
	case total >= 100:
		rate = 0.1
	}
	return total * rate
}

func quantityDiscount(quantity int) float64 {
	switch {
	case quantity <= 5:
		return 0
	case quantity <= 10:
		return 0.05
	default:
		return 0.1
	}
}

func CalculateOrderTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		discount := quantityDiscount(item.Quantity)
		total += float64(item.Quantity) * item.Price * (1 - discount)
	}
	return total
}

func CalculateQuantityDiscount(quantity int) string {
	switch {
	case quantity <= 5:
		return "No Discount"
	case quantity <= 10:
		return "5% Discount"
	default:
		return "10% Discount"
	}
}

func CalculateItemsShippingCost(items []ShipmentItem, method ShippingMethod) (float64, error) {
	tiers, ok := shippingTiers[method]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidShippingMethod, method)
	}

	var weight float64
	for _, item := range items {
		weight += item.Weight
	}

	switch {
	case weight <= 5:
		return tiers[0], nil
	case weight <= 10:
		return tiers[1], nil
	default:
		return tiers[2], nil
	}
}

// CalculateShippingCost prices a single package. Small needs every
// dimension <= 10, medium every dimension in (10, 30].
func CalculateShippingCost(weight, length, width, height float64) float64 {
	dim := max(length, width, height)
	small := min(length, width, height)

	switch {
	case weight <= 1 && dim <= 10:
		return 5
	case weight > 1 && weight <= 5 && small > 10 && dim <= 30:
		return 10
	default:
		return 20
	}
}

func CategorizeProduct(price float64) string {
	switch {
	case price >= 10 && price <= 50:
		return "Category A"
	case price >= 51 && price <= 100:
		return "Category B"
	case price >= 101 && price <= 200:
		return "Category C"
	default:
		return "Category D"
	}
}

// FormatNumber renders f in plain decimal notation with no trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
