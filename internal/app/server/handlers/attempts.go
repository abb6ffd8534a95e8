package handlers

import (
	"encoding/json"
	"net/http"
)

type attemptRequest struct {
	AccountNumber string `json:"account_number"`
	Amount        string `json:"amount"`
}

// StartAttempt feeds a submit event into the workflow. The response carries
// the resulting machine snapshot: awaiting_confirmation on success, failed
// with a reason otherwise. An attempt already underway yields 409.
func (h *Handlers) StartAttempt(w http.ResponseWriter, r *http.Request) {
	var req attemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snap, err := h.machine.Submit(r.Context(), req.AccountNumber, req.Amount)
	if err != nil {
		writeJSON(w, http.StatusConflict, snap)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (h *Handlers) AttemptStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.machine.Current())
}

func (h *Handlers) ConfirmAttempt(w http.ResponseWriter, r *http.Request) {
	snap, err := h.machine.Confirm(r.Context())
	if err != nil {
		writeJSON(w, http.StatusConflict, snap)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (h *Handlers) CancelAttempt(w http.ResponseWriter, r *http.Request) {
	snap, err := h.machine.Cancel()
	if err != nil {
		writeJSON(w, http.StatusConflict, snap)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

func (h *Handlers) AcknowledgeAttempt(w http.ResponseWriter, r *http.Request) {
	snap, err := h.machine.Acknowledge()
	if err != nil {
		writeJSON(w, http.StatusConflict, snap)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
