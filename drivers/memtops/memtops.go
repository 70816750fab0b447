// Package memtops registers an in-memory tops driver under the "mem"
// provider name. Collections live for the lifetime of the process and are
// shared by name, which makes the driver suitable for local testing and
// examples but not for production use.
package memtops

import (
	"context"
	"sync"

	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"

	"github.com/exttops/tops-go-cloud-adapter"
)

// Provider is the name the driver registers under.
const Provider = "mem"

func init() {
	tops.Register(Provider, driver{})
}

var (
	mu    sync.Mutex
	colls = make(map[string]*docstore.Collection)
)

// Collection returns the named in-memory collection, creating it on first
// use. Documents are keyed by the tops.KeyField field.
func Collection(database, name string) (*docstore.Collection, error) {
	mu.Lock()
	defer mu.Unlock()
	key := database + "/" + name
	if coll, ok := colls[key]; ok {
		return coll, nil
	}
	coll, err := memdocstore.OpenCollection(tops.KeyField, nil)
	if err != nil {
		return nil, err
	}
	colls[key] = coll
	return coll, nil
}

// Seed stores top documents in the named collection. Each document must
// carry the tops.KeyField field.
func Seed(ctx context.Context, database, name string, docs ...map[string]any) error {
	coll, err := Collection(database, name)
	if err != nil {
		return err
	}
	actionList := coll.Actions()
	for _, doc := range docs {
		actionList.Put(doc)
	}
	return actionList.Do(ctx)
}

// Reset closes and forgets all in-memory collections.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	for key, coll := range colls {
		coll.Close()
		delete(colls, key)
	}
}

type driver struct{}

func (driver) Open(ctx context.Context, params tops.ConnectParams) (tops.Client, error) {
	return client{}, nil
}

type client struct{}

func (client) Top(ctx context.Context, q tops.Query) (tops.Result, error) {
	coll, err := Collection(q.Database, q.Collection)
	if err != nil {
		return nil, err
	}
	return tops.DocstoreTop(ctx, coll, q)
}

func (client) Close() error { return nil }
