package entity

// Blockage represents a road blockage active during a closed time window.
type Blockage struct {
	ID    string         `json:"id" validate:"required"`
	Start SimTime        `json:"start"`
	End   SimTime        `json:"end"`
	Nodes []LogicalPoint `json:"nodes" validate:"min=1"` // Blocked polyline through grid nodes.
}

// Window returns the absolute start and end minutes of the blockage.
func (b *Blockage) Window() (start, end int) {
	return b.Start.Minutes(), b.End.Minutes()
}
