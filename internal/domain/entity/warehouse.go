package entity

// WarehouseKind distinguishes the main plant from intermediate tanks.
type WarehouseKind string

const (
	// WarehouseKindMain is the main GLP plant.
	WarehouseKindMain WarehouseKind = "main"
	// WarehouseKindIntermediate is a secondary tank refilled once a day.
	WarehouseKindIntermediate WarehouseKind = "intermediate"
)

// IsValid checks if the WarehouseKind is a valid value.
func (k WarehouseKind) IsValid() bool {
	switch k {
	case WarehouseKindMain, WarehouseKindIntermediate:
		return true
	default:
		return false
	}
}

// Warehouse is a plant or tank where trucks load GLP.
type Warehouse struct {
	ID         string        `json:"id" validate:"required"`
	Name       string        `json:"name"`
	Kind       WarehouseKind `json:"kind"`
	Position   LogicalPoint  `json:"position"`
	CapacityM3 float64       `json:"capacity_m3" validate:"gte=0"`
}
