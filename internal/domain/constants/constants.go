// Package constants holds identifiers shared across layers.
package constants

// Pub/Sub providers accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Map event types published after a tick.
const (
	MapEventOrderDelivered       = "order.delivered"
	MapEventVehicleCompleted     = "vehicle.completed"
	MapEventSelectionInvalidated = "selection.invalidated"
	MapEventSessionCreated       = "session.created"
	MapEventSessionClosed        = "session.closed"
)

// Frame formats served by the frame endpoint and the render command.
const (
	FrameFormatJSON    = "json"
	FrameFormatGeoJSON = "geojson"
)

// Deployment environments of the env.env setting.
const (
	EnvLocal   = "local"
	EnvDevelop = "develop"
)
