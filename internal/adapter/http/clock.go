package httpadapter

import (
	"encoding/json"
	"net/http"

	"campaign-engine/internal/core/domain"
)

func (h *Handler) handleClockState(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, toClockResponse(h.svc.Clock.State()))
}

func (h *Handler) handleClockStart(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Clock.Start(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClockResponse(state))
}

func (h *Handler) handleClockPause(w http.ResponseWriter, r *http.Request) {
	state, err := h.svc.Clock.Pause(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClockResponse(state))
}

type speedRequest struct {
	Speed domain.GameSpeed `json:"speed"`
}

// handleClockSpeed changes the tick rate. The body is {"speed":"fast"}; unknown
// speeds produce HTTP 400.
func (h *Handler) handleClockSpeed(w http.ResponseWriter, r *http.Request) {
	var req speedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, badRequest("invalid JSON"))
		return
	}
	if !req.Speed.Valid() {
		h.writeError(w, r, badRequest("speed must be slow, medium or fast"))
		return
	}
	state, err := h.svc.Clock.SetSpeed(r.Context(), req.Speed)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toClockResponse(state))
}
