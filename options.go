package tops

import "fmt"

// Options is the externally supplied configuration mapping. Connection
// options follow the "<provider>.<name>" key convention ("mongo.host",
// "mongo.port", "mongo.ssl"), and per-provider query settings are nested
// under the "master_tops" section keyed by provider name.
type Options map[string]any

const masterTopsKey = "master_tops"

// Connection option names, joined to the provider name with a dot.
const (
	hostOpt     = "host"
	portOpt     = "port"
	sslOpt      = "ssl"
	databaseOpt = "db"
	userOpt     = "user"
	passwordOpt = "password"
)

// Per-provider settings under the master_tops section.
const (
	collectionSetting       = "collection"
	idFieldSetting          = "id_field"
	rePatternSetting        = "re_pattern"
	reReplaceSetting        = "re_replace"
	statesFieldSetting      = "states_field"
	environmentFieldSetting = "environment_field"
)

const (
	defaultDatabase         = "tops"
	defaultCollection       = "tops"
	defaultIDField          = "_id"
	defaultStatesField      = "states"
	defaultEnvironmentField = "environment"
)

// DefaultEnvironment is the environment a top document is filed under when
// it carries no environment field of its own.
const DefaultEnvironment = "base"

// connectParams extracts the connection settings for provider. Host and
// port are required and carried verbatim; the TLS flag goes through the
// strict coercion rule.
func (o Options) connectParams(provider string) (ConnectParams, error) {
	host, ok := o[provider+"."+hostOpt]
	if !ok {
		return ConnectParams{}, fmt.Errorf("%w: %q", ErrMissingOption, provider+"."+hostOpt)
	}
	port, ok := o[provider+"."+portOpt]
	if !ok {
		return ConnectParams{}, fmt.Errorf("%w: %q", ErrMissingOption, provider+"."+portOpt)
	}
	return ConnectParams{Host: host, Port: port, SSL: o.useSSL(provider)}, nil
}

// useSSL applies the strict TLS coercion rule: TLS is enabled only when
// the option is stored as the boolean true. Any other value, including
// false, absence, and truthy non-booleans such as the string "true",
// leaves TLS off.
func (o Options) useSSL(provider string) bool {
	return o[provider+"."+sslOpt] == true
}

// providerSettings returns the settings nested under master_tops for
// provider. The presence of the provider entry is the enablement
// precondition; the settings themselves may be empty.
func (o Options) providerSettings(provider string) (map[string]any, error) {
	raw, ok := o[masterTopsKey]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingOption, masterTopsKey)
	}
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotEnabled, provider)
	}
	entry, ok := section[provider]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotEnabled, provider)
	}
	settings, _ := entry.(map[string]any)
	return settings, nil
}

// optionString returns the "<provider>.<name>" option as a string, or
// fallback when it is absent or not a string.
func (o Options) optionString(provider, name, fallback string) string {
	if s, ok := o[provider+"."+name].(string); ok {
		return s
	}
	return fallback
}

// settingString returns a master_tops setting as a string, or fallback
// when it is absent, empty, or not a string.
func settingString(settings map[string]any, name, fallback string) string {
	if s, ok := settings[name].(string); ok && s != "" {
		return s
	}
	return fallback
}
