package mongotops

import (
	"testing"

	"github.com/exttops/tops-go-cloud-adapter"
)

func TestClientOptions(t *testing.T) {
	params := tops.ConnectParams{Host: "db.example.test", Port: "27017", SSL: false}

	opts := clientOptions(params, tops.Query{Database: "tops"})
	if len(opts.Hosts) != 1 || opts.Hosts[0] != "db.example.test:27017" {
		t.Errorf("Hosts: %v, supposed to be [db.example.test:27017]", opts.Hosts)
	}
	if opts.TLSConfig != nil {
		t.Error("TLS configured with ssl disabled")
	}
	if opts.Auth != nil {
		t.Error("credentials set without user and password")
	}
}

func TestClientOptionsSSL(t *testing.T) {
	params := tops.ConnectParams{Host: "db.example.test", Port: 27017, SSL: true}

	opts := clientOptions(params, tops.Query{Database: "tops"})
	if opts.TLSConfig == nil {
		t.Error("TLS not configured with ssl enabled")
	}
	if len(opts.Hosts) != 1 || opts.Hosts[0] != "db.example.test:27017" {
		t.Errorf("Hosts: %v, supposed to be [db.example.test:27017]", opts.Hosts)
	}
}

func TestClientOptionsAuth(t *testing.T) {
	params := tops.ConnectParams{Host: "db.example.test", Port: "27017", SSL: false}
	q := tops.Query{Database: "infra", User: "reader", Password: "hunter2"}

	opts := clientOptions(params, q)
	if opts.Auth == nil {
		t.Fatal("credentials not set")
	}
	if opts.Auth.AuthSource != "infra" || opts.Auth.Username != "reader" || opts.Auth.Password != "hunter2" {
		t.Errorf("Auth: %+v, supposed to authenticate reader against infra", opts.Auth)
	}

	// A user without a password must not produce credentials.
	opts = clientOptions(params, tops.Query{Database: "infra", User: "reader"})
	if opts.Auth != nil {
		t.Error("credentials set without a password")
	}
}
