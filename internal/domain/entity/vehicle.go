package entity

// RouteWaypoint is one timestamped point of a precomputed vehicle route.
// Times are absolute simulation minutes.
type RouteWaypoint struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	StartTime   int    `json:"start_time"`
	ArriveTime  int    `json:"arrive_time"`
	IsDepot     bool   `json:"is_depot"`
	IsOrderStop bool   `json:"is_order_stop"`
	OrderID     string `json:"order_id,omitempty"` // Set on order stops.
}

// Point returns the grid node of the waypoint.
func (w RouteWaypoint) Point() LogicalPoint {
	return LogicalPoint{X: w.X, Y: w.Y}
}

// Brackets reports whether minute falls inside the waypoint's time span.
func (w RouteWaypoint) Brackets(minute int) bool {
	return w.StartTime <= minute && minute <= w.ArriveTime
}

// Vehicle is a GLP tanker truck with its route for the session.
type Vehicle struct {
	ID          string          `json:"id" validate:"required"`
	Code        string          `json:"code"`
	Type        string          `json:"type"` // Fleet type, e.g. TA, TB, TC, TD.
	Route       []RouteWaypoint `json:"route"`
	CurrentLoad float64         `json:"current_load"`
	Breakdown   bool            `json:"breakdown"`
}

// LastArrival returns the arrive time of the final waypoint, or -1 for an empty route.
func (v *Vehicle) LastArrival() int {
	if len(v.Route) == 0 {
		return -1
	}

	return v.Route[len(v.Route)-1].ArriveTime
}
