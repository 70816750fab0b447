package tops

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"
)

const (
	// DefaultProvider is the provider used when Config.Provider is empty.
	DefaultProvider = "mongo"

	defaultTimeout time.Duration = 30 * time.Second
)

// Result maps an environment or role name to the ordered list of top
// definition names that apply to the requesting identity. It is returned
// exactly as produced by the driver query.
type Result map[string][]string

// Config is the configuration for Resolver.
type Config struct {
	Provider string        // provider name under master_tops (e.g. "mongo")
	Timeout  time.Duration // the timeout for any operations on the resolver
}

// Resolver resolves top definitions for a requester through a registered
// driver. A Resolver holds no connection state; each call builds and
// closes its own client.
type Resolver struct {
	provider string
	timeout  time.Duration
	config   *Config
}

// New is the constructor for Resolver with the default provider.
func New() *Resolver {
	return NewWithOption(&Config{})
}

// NewWithOption is the constructor for Resolver with option.
func NewWithOption(config *Config) *Resolver {
	if config == nil {
		config = &Config{}
	}
	if config.Provider == "" {
		config.Provider = DefaultProvider
	}
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Resolver{
		provider: config.Provider,
		timeout:  config.Timeout,
		config:   config,
	}
}

// Top is a convenience wrapper resolving tops with the default provider.
func Top(ctx context.Context, opts Options, requesterID string) (Result, error) {
	return New().Top(ctx, opts, requesterID)
}

// Top resolves the top definitions that apply to requesterID.
//
// The driver for the configured provider must be registered before the
// options are consulted; an unregistered driver fails with
// ErrDriverUnavailable and no client is constructed. Host and port are
// taken from the options verbatim and the TLS flag is strictly coerced.
// Driver errors, whether from opening the client or from the query, are
// returned unchanged. A requester with no matching document resolves to an
// empty Result.
func (r *Resolver) Top(ctx context.Context, opts Options, requesterID string) (Result, error) {
	drv, err := lookupDriver(r.provider)
	if err != nil {
		return nil, err
	}

	settings, err := opts.providerSettings(r.provider)
	if err != nil {
		return nil, err
	}

	params, err := opts.connectParams(r.provider)
	if err != nil {
		return nil, err
	}

	// Optional regex rewrite of the requester id before lookup.
	if pattern := settingString(settings, rePatternSetting, ""); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("tops: invalid %s: %v", rePatternSetting, err)
		}
		requesterID = re.ReplaceAllString(requesterID, settingString(settings, reReplaceSetting, ""))
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	client, err := drv.Open(ctx, params)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := client.Close(); cerr != nil {
			log.Printf("close client error: %v", cerr)
		}
	}()

	return client.Top(ctx, Query{
		Database:         opts.optionString(r.provider, databaseOpt, defaultDatabase),
		Collection:       settingString(settings, collectionSetting, defaultCollection),
		User:             opts.optionString(r.provider, userOpt, ""),
		Password:         opts.optionString(r.provider, passwordOpt, ""),
		IDField:          settingString(settings, idFieldSetting, defaultIDField),
		StatesField:      settingString(settings, statesFieldSetting, defaultStatesField),
		EnvironmentField: settingString(settings, environmentFieldSetting, defaultEnvironmentField),
		RequesterID:      requesterID,
	})
}
