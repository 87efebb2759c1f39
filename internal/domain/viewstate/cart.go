package viewstate

import (
	"math"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// Every cart line quantity stays within [MinQuantity, MaxQuantity]
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// maxMinor bounds every amount in minor units. It is the largest integer a
// float64 holds exactly, so sums saturate instead of wrapping.
const maxMinor = 1 << 53

// CartTotals is the order summary box under the cart
type CartTotals struct {
	Subtotal     float64 `json:"subtotal"`
	DeliveryFee  float64 `json:"delivery_fee"`
	Total        float64 `json:"total"`
	FreeDelivery bool    `json:"free_delivery"`
	ItemCount    int     `json:"item_count"`
	LineCount    int     `json:"line_count"`
}

// Amounts are summed in minor units (paise) so that 24.68×2 + 40.88 is
// exactly 90.24.
func toMinor(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return clampMinor(math.Round(v * 100))
}

func clampMinor(m float64) int64 {
	switch {
	case m > maxMinor:
		return maxMinor
	case m < -maxMinor:
		return -maxMinor
	}
	return int64(m)
}

// addMinor and mulMinor never leave [-maxMinor, maxMinor]. Both operands are
// already inside it and quantities are at most MaxQuantity, so the int64
// intermediates cannot overflow.
func addMinor(a, b int64) int64 {
	return clampMinor(float64(a + b))
}

func mulMinor(m int64, quantity int) int64 {
	return clampMinor(float64(m * int64(clampQuantity(quantity))))
}

func clampQuantity(q int) int {
	return max(MinQuantity, min(q, MaxQuantity))
}

func fromMinor(m int64) float64 {
	return float64(m) / 100
}

// LineTotal returns price × quantity for one cart line
func LineTotal(item entities.CartItem) float64 {
	return fromMinor(mulMinor(toMinor(item.Price), item.Quantity))
}

// Subtotal sums price × quantity over all items. An empty cart is 0.
func Subtotal(items []entities.CartItem) float64 {
	var sum int64
	for _, item := range items {
		sum = addMinor(sum, mulMinor(toMinor(item.Price), item.Quantity))
	}
	return fromMinor(sum)
}

// Totals computes the cart summary for a fixed delivery fee
func Totals(items []entities.CartItem, deliveryFee float64) CartTotals {
	subtotal := Subtotal(items)
	count := 0
	for _, item := range items {
		count += clampQuantity(item.Quantity)
	}
	return CartTotals{
		Subtotal:     subtotal,
		DeliveryFee:  deliveryFee,
		Total:        fromMinor(addMinor(toMinor(subtotal), toMinor(deliveryFee))),
		FreeDelivery: deliveryFee == 0,
		ItemCount:    count,
		LineCount:    len(items),
	}
}

// ClampQuantity applies delta to current and keeps the result within
// [MinQuantity, MaxQuantity]
func ClampQuantity(current, delta int) int {
	current = clampQuantity(current)
	switch {
	case delta < MinQuantity-current:
		return MinQuantity
	case delta > MaxQuantity-current:
		return MaxQuantity
	}
	return current + delta
}

// UpdateQuantity returns a new slice in which the line with id has its
// quantity moved by delta. The input is left untouched. found is false when
// no line has that id.
func UpdateQuantity(items []entities.CartItem, id string, delta int) (updated []entities.CartItem, found bool) {
	updated = make([]entities.CartItem, len(items))
	for i, item := range items {
		if item.ID == id {
			item.Quantity = ClampQuantity(item.Quantity, delta)
			found = true
		}
		updated[i] = item
	}
	return updated, found
}

// RemoveItem returns a new slice without the line with id
func RemoveItem(items []entities.CartItem, id string) (updated []entities.CartItem, found bool) {
	updated = Filter(items, func(item entities.CartItem) bool { return item.ID != id })
	return updated, len(updated) != len(items)
}

// AddItem returns a new slice with item appended, or, when a line for the
// same product already exists, with that line's quantity raised instead.
func AddItem(items []entities.CartItem, item entities.CartItem) []entities.CartItem {
	item.Quantity = clampQuantity(item.Quantity)
	updated := make([]entities.CartItem, 0, len(items)+1)
	merged := false
	for _, existing := range items {
		if !merged && item.ProductID != "" && existing.ProductID == item.ProductID {
			existing.Quantity = ClampQuantity(existing.Quantity, item.Quantity)
			merged = true
		}
		updated = append(updated, existing)
	}
	if !merged {
		updated = append(updated, item)
	}
	return updated
}
