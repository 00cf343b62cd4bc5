package entity

// Order represents a customer GLP order placed on the map.
type Order struct {
	ID       string       `json:"id" validate:"required"`     // Unique order identifier.
	Code     string       `json:"code"`                       // Human readable order code.
	Client   string       `json:"client"`                     // Client identifier.
	Position LogicalPoint `json:"position"`                   // Delivery node on the grid.
	Release  SimTime      `json:"release"`                    // Moment the order appears on the map.
	Deadline SimTime      `json:"deadline"`                   // Latest delivery moment promised to the client.
	VolumeM3 float64      `json:"volume_m3" validate:"gte=0"` // Requested GLP volume in cubic metres.
}

// ActivationMinute returns the absolute minute the order becomes visible.
func (o *Order) ActivationMinute() int {
	return o.Release.Minutes()
}
