// Package constants holds well-known configuration values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push transports
const (
	PushTransportWebPush = "webpush"
	PushTransportFCM     = "fcm"
)

// DateLayout is the wire format of reference dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"
