// Package store provides persistence for named graph records.
//
// This package defines the Store interface with implementations for
// different backends:
//   - file: One JSON file per record, for CLI and single-node use
//   - mongo: MongoDB-backed storage for the API server
//
// # Records
//
// A Record wraps a generated graph document with its name, generation
// parameters, and creation time. Names are unique per store; saving a
// duplicate name fails with [ErrExists] so callers can distinguish
// conflicts from other failures.
//
// # Usage
//
// Create a store:
//
//	// CLI / single node
//	store, err := store.NewFileStore(dataDir)
//
//	// API server
//	store, err := store.NewMongoStore(ctx, "mongodb://localhost:27017", "graphgen")
//
// Save and load records:
//
//	rec := store.NewRecord("demo", 6, 3, 42, doc)
//	if err := store.Save(ctx, rec); err != nil {
//	    return err
//	}
//
//	rec, err := store.Get(ctx, "demo")
//	if errors.Is(err, store.ErrNotFound) {
//	    // No record with that name
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/graphforge/graphgen/pkg/graphio"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no record has the requested name.
	ErrNotFound = errors.New("record not found")

	// ErrExists is returned when saving a record whose name is taken.
	ErrExists = errors.New("record already exists")
)

// Record wraps a graph document with its name and generation parameters.
type Record struct {
	ID          string            `json:"id" bson:"_id"`
	Name        string            `json:"name" bson:"name"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
	Depth       int               `json:"depth" bson:"depth"`
	NewVertices int               `json:"new_vertices" bson:"new_vertices"`
	Seed        uint64            `json:"seed" bson:"seed"`
	Graph       *graphio.Document `json:"graph,omitempty" bson:"graph,omitempty"`
}

// NewRecord creates a record with a fresh id and creation time.
func NewRecord(name string, depth, newVertices int, seed uint64, doc *graphio.Document) *Record {
	return &Record{
		ID:          uuid.NewString(),
		Name:        name,
		CreatedAt:   time.Now().UTC(),
		Depth:       depth,
		NewVertices: newVertices,
		Seed:        seed,
		Graph:       doc,
	}
}

// Store is the interface for record storage backends.
type Store interface {
	// Save stores a record. Returns ErrExists if the name is taken.
	Save(ctx context.Context, rec *Record) error

	// Get retrieves a record by name. Returns ErrNotFound if absent.
	Get(ctx context.Context, name string) (*Record, error)

	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record by name. Returns ErrNotFound if absent.
	Delete(ctx context.Context, name string) error

	// Close releases any resources held by the backend.
	Close() error
}
