// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/okian/scorecard/internal/domain/ranking"
)

// CompaniesHandler handles collection-level company requests.
type CompaniesHandler struct {
	deps Dependencies
}

// NewCompaniesHandler creates a new companies handler.
func NewCompaniesHandler(deps Dependencies) *CompaniesHandler {
	return &CompaniesHandler{deps: deps}
}

// HandleCompanies dispatches GET /companies?sort=rank|alpha&q=needle and
// POST /companies.
func (h *CompaniesHandler) HandleCompanies(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleAdd(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleList returns the scored and ranked projection. Query parameters
// update the session's display preferences before the view is rebuilt.
func (h *CompaniesHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	if q.Has("sort") {
		h.deps.SetSortMode(ctx, ranking.ParseSortMode(q.Get("sort")))
	}
	if q.Has("q") {
		h.deps.SetSearchFilter(ctx, q.Get("q"))
	}
	writeJSON(w, http.StatusOK, h.deps.Rows(ctx))
}

func (h *CompaniesHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	rec, err := h.deps.Add(r.Context(), req.Name, req.Values)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, companyResponse{Name: rec.Name, Values: rec.Values})
}
