// Package entity contains the core business objects of the project.
package entity

// EntityKind discriminates the entities that can be drawn, hit and selected on the map.
type EntityKind string

const (
	// EntityKindOrder is a customer GLP order waiting for delivery.
	EntityKindOrder EntityKind = "order"
	// EntityKindTruck is a delivery truck following a precomputed route.
	EntityKindTruck EntityKind = "truck"
	// EntityKindBlockage is a time-windowed road blockage.
	EntityKindBlockage EntityKind = "blockage"
	// EntityKindWarehouse is a plant or intermediate tank.
	EntityKindWarehouse EntityKind = "warehouse"
)

// String returns the string representation of the EntityKind.
func (k EntityKind) String() string {
	return string(k)
}

// IsValid checks if the EntityKind is a valid value.
func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindOrder, EntityKindTruck, EntityKindBlockage, EntityKindWarehouse:
		return true
	default:
		return false
	}
}

// EntityRef identifies one entity of the snapshot.
type EntityRef struct {
	Kind EntityKind `json:"kind"`
	ID   string     `json:"id"`
}

// IsZero reports whether the reference points at nothing.
func (r EntityRef) IsZero() bool {
	return r.Kind == "" && r.ID == ""
}
