// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/okian/scorecard/internal/adapters/repository"
	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/ranking"
	"github.com/okian/scorecard/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	// Record intents.
	Add(ctx context.Context, name string, values map[string]int) (model.Record, error)
	Get(ctx context.Context, name string) (model.Record, error)
	StartEdit(ctx context.Context, name string) bool
	SaveEdit(ctx context.Context, name string, values map[string]int) (model.Record, error)
	RequestDelete(ctx context.Context, name string)
	ConfirmDelete(ctx context.Context) (string, error)

	// View intents.
	SetSortMode(ctx context.Context, mode ranking.SortMode)
	SetSearchFilter(ctx context.Context, text string)
	Rows(ctx context.Context) []types.Row

	// Tabular boundary.
	Import(ctx context.Context, r io.Reader) (loaded, skipped int, err error)
	Export(ctx context.Context, w io.Writer) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	companiesHandler *CompaniesHandler
	companyHandler   *CompanyHandler
	transferHandler  *TransferHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		companiesHandler: NewCompaniesHandler(deps),
		companyHandler:   NewCompanyHandler(deps),
		transferHandler:  NewTransferHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/companies", MetricsMiddleware(s.companiesHandler.HandleCompanies, "companies"))
	mux.HandleFunc("/companies/", MetricsMiddleware(s.companyHandler.HandleCompany, "company"))
	mux.HandleFunc("/import", MetricsMiddleware(s.transferHandler.HandleImport, "import"))
	mux.HandleFunc("/export.csv", MetricsMiddleware(s.transferHandler.HandleExport, "export"))
}

// companyRequest mirrors the JSON body of POST /companies and
// PUT /companies/{name}.
type companyRequest struct {
	Name   string         `json:"name"`
	Values map[string]int `json:"values"`
}

type companyResponse struct {
	Name   string         `json:"name"`
	Values map[string]int `json:"values"`
}

type importResponse struct {
	Loaded  int `json:"loaded"`
	Skipped int `json:"skipped"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeStoreError translates record store sentinels to HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, repository.ErrDuplicateName):
		writeError(w, http.StatusConflict, "duplicate_name", err)
	case errors.Is(err, repository.ErrEmptyName):
		writeError(w, http.StatusBadRequest, "empty_name", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
