// Package mongotops registers the MongoDB tops driver under the "mongo"
// provider name.
package mongotops

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gocloud.dev/docstore/mongodocstore"

	"github.com/exttops/tops-go-cloud-adapter"
)

// Provider is the name the driver registers under.
const Provider = "mongo"

func init() {
	tops.Register(Provider, driver{})
}

type driver struct{}

// Open records the connection parameters; the mongo client itself is built
// lazily on the first query, once the credentials and target database are
// known.
func (driver) Open(ctx context.Context, params tops.ConnectParams) (tops.Client, error) {
	return &client{params: params}, nil
}

type client struct {
	params tops.ConnectParams
	conn   *mongo.Client
}

func (c *client) Top(ctx context.Context, q tops.Query) (tops.Result, error) {
	log.Printf("connecting to %v:%v for external tops", c.params.Host, c.params.Port)
	conn, err := mongo.Connect(ctx, clientOptions(c.params, q))
	if err != nil {
		return nil, err
	}
	c.conn = conn

	mcoll := conn.Database(q.Database).Collection(q.Collection)
	coll, err := mongodocstore.OpenCollection(mcoll, tops.KeyField, nil)
	if err != nil {
		return nil, err
	}
	defer coll.Close()

	return tops.DocstoreTop(ctx, coll, q)
}

func (c *client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Disconnect(context.Background())
	c.conn = nil
	return err
}

// clientOptions builds the mongo client options from the connection
// parameters and query. Host and port are stringified here, at the driver
// boundary, because the mongo driver addresses servers as "host:port".
// Credentials are set only when both user and password are present,
// authenticating against the target database.
func clientOptions(params tops.ConnectParams, q tops.Query) *options.ClientOptions {
	opts := options.Client().SetHosts([]string{
		net.JoinHostPort(fmt.Sprint(params.Host), fmt.Sprint(params.Port)),
	})
	if params.SSL {
		opts.SetTLSConfig(&tls.Config{})
	}
	if q.User != "" && q.Password != "" {
		opts.SetAuth(options.Credential{
			AuthSource: q.Database,
			Username:   q.User,
			Password:   q.Password,
		})
	}
	return opts
}
