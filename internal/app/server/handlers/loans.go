package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"francoggm/emipay-gateway-go/internal/models"
)

type listingResponse struct {
	Loans     []models.LoanAccount `json:"loans"`
	FetchedAt time.Time            `json:"fetched_at"`
	Stale     bool                 `json:"stale,omitempty"`
}

// GetLoans refreshes the loan listing and returns it. When the ledger is
// unreachable the previously fetched listing is served with a stale marker;
// only when nothing was ever fetched does the request fail.
func (h *Handlers) GetLoans(w http.ResponseWriter, r *http.Request) {
	listing, err := h.directory.Refresh(r.Context())
	if listing == nil {
		http.Error(w, "failed to load loans", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, listingResponse{
		Loans:     listing.Loans,
		FetchedAt: listing.FetchedAt,
		Stale:     err != nil,
	})
}

// Healthz probes ledger reachability on demand.
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.ledger.Ping(r.Context()); err != nil {
		h.log.Warn("ledger health probe failed", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "ledger unreachable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
