package memtops_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/exttops/tops-go-cloud-adapter"
	"github.com/exttops/tops-go-cloud-adapter/drivers/memtops"
)

func memOptions() tops.Options {
	return tops.Options{
		"master_tops": map[string]any{"mem": map[string]any{}},
		"mem.host":    "localhost",
		"mem.port":    "27017",
	}
}

func TestResolveAgainstMemDriver(t *testing.T) {
	defer memtops.Reset()

	err := memtops.Seed(context.Background(), "tops", "tops",
		map[string]any{
			"id":          "node1",
			"environment": "prod",
			"states":      []any{"core", "web"},
		},
		map[string]any{
			"id":     "node2",
			"states": []any{"core"},
		},
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := tops.NewWithOption(&tops.Config{Provider: memtops.Provider})

	got, err := r.Top(context.Background(), memOptions(), "node1")
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if !reflect.DeepEqual(got, tops.Result{"prod": {"core", "web"}}) {
		t.Errorf("Result: %v, supposed to be {prod: [core web]}", got)
	}

	got, err = r.Top(context.Background(), memOptions(), "node2")
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if !reflect.DeepEqual(got, tops.Result{"base": {"core"}}) {
		t.Errorf("Result: %v, supposed to be {base: [core]}", got)
	}

	got, err = r.Top(context.Background(), memOptions(), "nonesuch")
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Result: %v, supposed to be empty for an unknown requester", got)
	}
}

func TestResolveWithProviderSettings(t *testing.T) {
	defer memtops.Reset()

	err := memtops.Seed(context.Background(), "infra", "assignments",
		map[string]any{
			"id":       "doc1",
			"hostname": "node1",
			"env":      "staging",
			"bundles":  []any{"edit"},
		},
	)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	opts := tops.Options{
		"master_tops": map[string]any{
			"mem": map[string]any{
				"collection":        "assignments",
				"id_field":          "hostname",
				"states_field":      "bundles",
				"environment_field": "env",
			},
		},
		"mem.host": "localhost",
		"mem.port": "27017",
		"mem.db":   "infra",
	}

	r := tops.NewWithOption(&tops.Config{Provider: memtops.Provider})
	got, err := r.Top(context.Background(), opts, "node1")
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if !reflect.DeepEqual(got, tops.Result{"staging": {"edit"}}) {
		t.Errorf("Result: %v, supposed to be {staging: [edit]}", got)
	}
}

func TestCollectionIsSharedByName(t *testing.T) {
	defer memtops.Reset()

	a, err := memtops.Collection("tops", "tops")
	if err != nil {
		t.Fatalf("Collection() error = %v", err)
	}
	b, err := memtops.Collection("tops", "tops")
	if err != nil {
		t.Fatalf("Collection() error = %v", err)
	}
	if a != b {
		t.Error("same name returned distinct collections")
	}

	c, err := memtops.Collection("other", "tops")
	if err != nil {
		t.Fatalf("Collection() error = %v", err)
	}
	if a == c {
		t.Error("distinct databases share a collection")
	}
}
