package httpadapter

import "net/http"

// handleRunNow executes every entry due on ?date= (default: current game
// date) outside the clock cadence.
func (h *Handler) handleRunNow(w http.ResponseWriter, r *http.Request) {
	date, err := h.dateParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	report, err := h.svc.Executor.RunNow(r.Context(), date)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toReportResponse(report))
}

// handleRebalance runs one rebalancing cycle. An infeasible allocation
// produces HTTP 422 and leaves budgets unchanged.
func (h *Handler) handleRebalance(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Rebalancer.Rebalance(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toRebalanceResponse(result))
}
