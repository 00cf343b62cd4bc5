package visibility

import (
	"sort"

	"glpmap/internal/domain/entity"
)

// DeliveredSet is a set of delivered order ids. The zero value is an empty, read-only set.
type DeliveredSet map[string]struct{}

// NewDeliveredSet builds a set from ids.
func NewDeliveredSet(ids ...string) DeliveredSet {
	set := make(DeliveredSet, len(ids))
	for _, id := range ids {
		set.Add(id)
	}

	return set
}

// Add inserts id and reports whether it was new.
func (s DeliveredSet) Add(id string) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}

	return true
}

// Has reports whether id is in the set.
func (s DeliveredSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Len returns the number of ids.
func (s DeliveredSet) Len() int {
	return len(s)
}

// IDs returns the ids in ascending order.
func (s DeliveredSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// DeliveredFromRoutes collects the orders whose stop waypoint has been fully traversed at or
// before minute.
func DeliveredFromRoutes(vehicles []*entity.Vehicle, minute int) DeliveredSet {
	set := make(DeliveredSet)
	for _, v := range vehicles {
		for _, wp := range v.Route {
			if wp.IsOrderStop && wp.OrderID != "" && wp.ArriveTime <= minute {
				set.Add(wp.OrderID)
			}
		}
	}

	return set
}

// Ledger accumulates delivered orders across ticks. Once recorded an order stays delivered for
// the rest of the session.
type Ledger struct {
	delivered DeliveredSet
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{delivered: make(DeliveredSet)}
}

// Merge records every id of set and returns the ids that were not known before, sorted.
func (l *Ledger) Merge(set DeliveredSet) []string {
	var added []string
	for id := range set {
		if l.delivered.Add(id) {
			added = append(added, id)
		}
	}
	sort.Strings(added)

	return added
}

// Delivered returns the accumulated set. Callers must not modify it.
func (l *Ledger) Delivered() DeliveredSet {
	return l.delivered
}

// Clone returns an independent copy of the ledger.
func (l *Ledger) Clone() *Ledger {
	clone := NewLedger()
	for id := range l.delivered {
		clone.delivered.Add(id)
	}

	return clone
}
