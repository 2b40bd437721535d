package constants

// Supported event publisher providers.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Tag creation policy values.
const (
	TagCreatePolicyAuthenticated = "authenticated"
	TagCreatePolicyAdmin         = "admin"
)
