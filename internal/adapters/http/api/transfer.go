// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"

	"github.com/okian/scorecard/internal/adapters/tabular"
)

// TransferHandler handles the tabular boundary: CSV import and export.
type TransferHandler struct {
	deps Dependencies
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(deps Dependencies) *TransferHandler {
	return &TransferHandler{deps: deps}
}

// HandleImport handles POST /import with a CSV body. A schema error
// rejects the whole batch; malformed cells are recovered row-locally.
func (h *TransferHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	loaded, skipped, err := h.deps.Import(r.Context(), r.Body)
	if err != nil {
		if errors.Is(err, tabular.ErrMissingColumns) {
			writeError(w, http.StatusBadRequest, "missing_columns", err)
			return
		}
		writeError(w, http.StatusBadRequest, "bad_csv", err)
		return
	}
	writeJSON(w, http.StatusOK, importResponse{Loaded: loaded, Skipped: skipped})
}

// HandleExport handles GET /export.csv, streaming the current projection.
func (h *TransferHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="companies.csv"`)
	if err := h.deps.Export(r.Context(), w); err != nil {
		// Headers are already out; nothing useful left to send.
		return
	}
}
