package tops

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Errors returned by the resolver before a driver call is attempted. They
// can be tested with errors.Is.
var (
	// ErrDriverUnavailable indicates that no driver is registered for the
	// configured provider.
	ErrDriverUnavailable = errors.New("tops: driver unavailable")

	// ErrMissingOption indicates that a required configuration key is
	// absent from the options mapping.
	ErrMissingOption = errors.New("tops: missing required option")

	// ErrNotEnabled indicates that the provider has no entry under the
	// master_tops section of the options mapping.
	ErrNotEnabled = errors.New("tops: provider not enabled in master_tops")
)

// ConnectParams carries the connection settings handed to a driver.
// Host and Port hold the option values exactly as stored in the options
// mapping; the driver decides how to interpret them.
type ConnectParams struct {
	Host any
	Port any
	SSL  bool
}

// Query describes a single top lookup.
type Query struct {
	Database         string
	Collection       string
	User             string
	Password         string
	IDField          string // document field matched against RequesterID
	StatesField      string // document field holding the top entries
	EnvironmentField string // document field holding the environment name
	RequesterID      string
}

// Client is an open handle to a top provider. A client is built fresh per
// resolver call and closed at the end of the call.
type Client interface {
	// Top returns the tops that apply to the requester described by q.
	Top(ctx context.Context, q Query) (Result, error)
	Close() error
}

// Driver constructs clients for a provider.
type Driver interface {
	Open(ctx context.Context, params ConnectParams) (Client, error)
}

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Driver)
)

// Register makes a driver available under the given provider name. It is
// intended to be called from the init function of a driver package.
// Register panics if d is nil or a driver is already registered under the
// same name.
func Register(name string, d Driver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if d == nil {
		panic("tops: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("tops: Register called twice for driver " + name)
	}
	drivers[name] = d
}

func lookupDriver(name string) (Driver, error) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	d, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (forgotten import of a driver package?)", ErrDriverUnavailable, name)
	}
	return d, nil
}
