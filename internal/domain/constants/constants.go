// Package constants holds string constants shared between configuration and wiring.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/sub providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Key-value namespaces.
const (
	KVSettingPrefix  = "setting:"
	KVLanguagePrefix = "lang:"
	KVProductsKey    = "drink_menu_products"
)

// Cookie and header names.
const (
	ClientIDCookie = "brewmenu_client"
	ClientIDHeader = "X-Client-ID"
)
