package api

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/graphforge/graphgen/pkg/client"
	apperrors "github.com/graphforge/graphgen/pkg/errors"
)

// TestClientRoundTrip drives a real server through pkg/client to check
// that the two sides agree on paths, payloads, and error envelopes.
func TestClientRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)
	server := httptest.NewServer(s.Router())
	t.Cleanup(server.Close)

	c, err := client.New(server.URL)
	if err != nil {
		t.Fatalf("client.New() error: %v", err)
	}
	ctx := context.Background()

	if err := c.Health(ctx); err != nil {
		t.Fatalf("Health() error: %v", err)
	}

	rec, err := c.Generate(ctx, client.GenerateRequest{Depth: 2, NewVertices: 2, Seed: 42, Name: "demo"})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if rec.Name != "demo" || rec.Graph == nil {
		t.Errorf("Generate() record = %+v", rec)
	}

	_, err = c.Generate(ctx, client.GenerateRequest{Depth: 2, NewVertices: 2, Seed: 42, Name: "demo"})
	if !apperrors.Is(err, apperrors.ErrCodeGraphExists) {
		t.Errorf("duplicate Generate() error = %v, want GRAPH_EXISTS", err)
	}

	fetched, err := c.Get(ctx, "demo")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if fetched.ID != rec.ID {
		t.Errorf("Get() id = %s, want %s", fetched.ID, rec.ID)
	}
	if fetched.Graph == nil || len(fetched.Graph.Vertices) != len(rec.Graph.Vertices) {
		t.Error("Get() should return the stored document")
	}

	recs, err := c.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(recs) != 1 || recs[0].Name != "demo" {
		t.Errorf("List() = %+v", recs)
	}
	if recs[0].Graph != nil {
		t.Error("List() should omit graph documents")
	}

	dotSrc, err := c.DOT(ctx, "demo")
	if err != nil {
		t.Fatalf("DOT() error: %v", err)
	}
	if !strings.HasPrefix(dotSrc, "digraph G {") {
		t.Errorf("DOT() = %q", dotSrc)
	}

	if err := c.Delete(ctx, "demo"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	_, err = c.Get(ctx, "demo")
	if !apperrors.Is(err, apperrors.ErrCodeGraphNotFound) {
		t.Errorf("Get() after delete error = %v, want GRAPH_NOT_FOUND", err)
	}
}
