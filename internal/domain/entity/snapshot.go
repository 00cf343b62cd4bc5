package entity

import (
	"github.com/pkg/errors"
)

// Snapshot is the read-only collection of map entities a session renders.
type Snapshot struct {
	Name       string       `json:"name"`
	Grid       GridSpec     `json:"grid" validate:"required"`
	Orders     []*Order     `json:"orders" validate:"dive"`
	Blockages  []*Blockage  `json:"blockages" validate:"dive"`
	Warehouses []*Warehouse `json:"warehouses" validate:"dive"`
	Vehicles   []*Vehicle   `json:"vehicles" validate:"dive"`
}

// Validate checks the structural rules that the struct tags cannot express.
func (s *Snapshot) Validate() error {
	if s.Grid.Columns <= 0 || s.Grid.Rows <= 0 {
		return errors.Errorf("grid must have positive size, got %dx%d", s.Grid.Columns, s.Grid.Rows)
	}
	if s.Grid.CellSizeX <= 0 || s.Grid.CellSizeY <= 0 {
		return errors.Errorf("grid cell size must be positive, got %gx%g", s.Grid.CellSizeX, s.Grid.CellSizeY)
	}

	seen := make(map[EntityRef]struct{})
	register := func(kind EntityKind, id string) error {
		if id == "" {
			return errors.Errorf("%s without id", kind)
		}
		ref := EntityRef{Kind: kind, ID: id}
		if _, dup := seen[ref]; dup {
			return errors.Errorf("duplicate %s id %q", kind, id)
		}
		seen[ref] = struct{}{}

		return nil
	}

	for i, o := range s.Orders {
		if o == nil {
			return errors.Errorf("%s entry %d is null", EntityKindOrder, i)
		}
		if err := register(EntityKindOrder, o.ID); err != nil {
			return err
		}
	}
	for i, b := range s.Blockages {
		if b == nil {
			return errors.Errorf("%s entry %d is null", EntityKindBlockage, i)
		}
		if err := register(EntityKindBlockage, b.ID); err != nil {
			return err
		}
		if start, end := b.Window(); end < start {
			return errors.Errorf("blockage %q ends before it starts", b.ID)
		}
	}
	for i, w := range s.Warehouses {
		if w == nil {
			return errors.Errorf("%s entry %d is null", EntityKindWarehouse, i)
		}
		if err := register(EntityKindWarehouse, w.ID); err != nil {
			return err
		}
		if w.Kind != "" && !w.Kind.IsValid() {
			return errors.Errorf("warehouse %q has unknown kind %q", w.ID, w.Kind)
		}
	}
	for i, v := range s.Vehicles {
		if v == nil {
			return errors.Errorf("%s entry %d is null", EntityKindTruck, i)
		}
		if err := register(EntityKindTruck, v.ID); err != nil {
			return err
		}
		for j := 1; j < len(v.Route); j++ {
			if v.Route[j].StartTime < v.Route[j-1].StartTime {
				return errors.Errorf("vehicle %q route is not time ordered at waypoint %d", v.ID, j)
			}
		}
	}

	return nil
}

// Contains reports whether the snapshot holds the referenced entity.
func (s *Snapshot) Contains(ref EntityRef) bool {
	switch ref.Kind {
	case EntityKindOrder:
		for _, o := range s.Orders {
			if o.ID == ref.ID {
				return true
			}
		}
	case EntityKindBlockage:
		for _, b := range s.Blockages {
			if b.ID == ref.ID {
				return true
			}
		}
	case EntityKindWarehouse:
		for _, w := range s.Warehouses {
			if w.ID == ref.ID {
				return true
			}
		}
	case EntityKindTruck:
		for _, v := range s.Vehicles {
			if v.ID == ref.ID {
				return true
			}
		}
	}

	return false
}
