// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

// CompanyHandler handles single-company requests addressed by name.
type CompanyHandler struct {
	deps Dependencies
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(deps Dependencies) *CompanyHandler {
	return &CompanyHandler{deps: deps}
}

// HandleCompany dispatches GET, PUT and DELETE /companies/{name}.
func (h *CompanyHandler) HandleCompany(w http.ResponseWriter, r *http.Request) {
	name := companyName(r)
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, name)
	case http.MethodPut:
		h.handleUpdate(w, r, name)
	case http.MethodDelete:
		h.handleDelete(w, r, name)
	default:
		http.NotFound(w, r)
	}
}

func (h *CompanyHandler) handleGet(w http.ResponseWriter, r *http.Request, name string) {
	rec, err := h.deps.Get(r.Context(), name)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companyResponse{Name: rec.Name, Values: rec.Values})
}

// handleUpdate runs the edit workflow end to end: start the edit, save the
// new values. The record name is immutable; the body's values are the only
// thing applied.
func (h *CompanyHandler) handleUpdate(w http.ResponseWriter, r *http.Request, name string) {
	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	ctx := r.Context()
	h.deps.StartEdit(ctx, name)
	rec, err := h.deps.SaveEdit(ctx, name, req.Values)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, companyResponse{Name: rec.Name, Values: rec.Values})
}

// handleDelete runs request-then-confirm in one step; the confirmation
// dialog is the client's concern over HTTP.
func (h *CompanyHandler) handleDelete(w http.ResponseWriter, r *http.Request, name string) {
	ctx := r.Context()
	h.deps.RequestDelete(ctx, name)
	if _, err := h.deps.ConfirmDelete(ctx); err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// companyName extracts the name segment from /companies/{name}.
func companyName(r *http.Request) string {
	name := strings.TrimPrefix(r.URL.Path, "/companies/")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return strings.TrimSpace(name)
}
