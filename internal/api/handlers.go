package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/graphforge/graphgen/pkg/errors"
	"github.com/graphforge/graphgen/pkg/graphio"
	"github.com/graphforge/graphgen/pkg/pipeline"
	"github.com/graphforge/graphgen/pkg/render/dot"
	"github.com/graphforge/graphgen/pkg/store"
)

// Request caps to bound the work a single call can demand.
const (
	maxDepth       = 1000
	maxNewVertices = 10000
)

// generateRequest is the POST /api/v1/graphs body. When Name is set the
// result is persisted and duplicate names are rejected.
type generateRequest struct {
	Depth       int    `json:"depth"`
	NewVertices int    `json:"new_vertices"`
	Seed        uint64 `json:"seed"`
	Name        string `json:"name,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}
	if req.Depth > maxDepth {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "depth must be at most %d", maxDepth))
		return
	}
	if req.NewVertices > maxNewVertices {
		s.writeError(w, r, apperrors.New(apperrors.ErrCodeInvalidInput, "new_vertices must be at most %d", maxNewVertices))
		return
	}
	if req.Name != "" {
		if err := apperrors.ValidateGraphName(req.Name); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	result, err := s.runner.Run(r.Context(), pipeline.Options{
		Depth:       req.Depth,
		NewVertices: req.NewVertices,
		Seed:        req.Seed,
		Format:      pipeline.FormatJSON,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec := store.NewRecord(req.Name, req.Depth, req.NewVertices, req.Seed, result.Doc)
	if req.Name == "" {
		s.writeJSON(w, http.StatusOK, rec)
		return
	}
	if err := s.store.Save(r.Context(), rec); err != nil {
		s.writeError(w, r, storeError(err, req.Name))
		return
	}
	s.writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	recs, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	// Listings carry metadata only; fetch a single record for the document.
	summaries := make([]*store.Record, 0, len(recs))
	for _, rec := range recs {
		summary := *rec
		summary.Graph = nil
		summaries = append(summaries, &summary)
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	rec, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.writeError(w, r, storeError(err, name))
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	rec, err := s.store.Get(r.Context(), name)
	if err != nil {
		s.writeError(w, r, storeError(err, name))
		return
	}

	g, err := graphio.ToGraph(rec.Graph)
	if err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInternal, err, "stored graph %q is invalid", name))
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.Write([]byte(dot.ToDOT(g, dot.Options{})))
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := s.store.Delete(r.Context(), name); err != nil {
		s.writeError(w, r, storeError(err, name))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
