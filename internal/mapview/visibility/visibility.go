// Package visibility decides which time-windowed entities are on the map at a simulation minute.
package visibility

import (
	"glpmap/internal/domain/entity"
)

// BlockageActive reports whether minute falls inside the blockage window, both ends included.
func BlockageActive(b *entity.Blockage, minute int) bool {
	start, end := b.Window()

	return start <= minute && minute <= end
}

// OrderPending reports whether the order has been released and is not delivered yet.
func OrderPending(o *entity.Order, minute int, delivered DeliveredSet) bool {
	return o.ActivationMinute() <= minute && !delivered.Has(o.ID)
}

// Result is the subset of entities to render for one tick.
type Result struct {
	Minute    int
	Orders    []*entity.Order
	Blockages []*entity.Blockage
}

// Filter recomputes the visible subset from scratch. Input order is preserved, so the same
// arguments always yield the same result.
func Filter(orders []*entity.Order, blockages []*entity.Blockage, minute int, delivered DeliveredSet) Result {
	result := Result{
		Minute:    minute,
		Orders:    make([]*entity.Order, 0, len(orders)),
		Blockages: make([]*entity.Blockage, 0, len(blockages)),
	}

	for _, o := range orders {
		if OrderPending(o, minute, delivered) {
			result.Orders = append(result.Orders, o)
		}
	}
	for _, b := range blockages {
		if BlockageActive(b, minute) {
			result.Blockages = append(result.Blockages, b)
		}
	}

	return result
}
