package httpadapter

import (
	"net/http"
	"time"
)

const timeLayout = time.RFC3339

type sweepResponse struct {
	Evaluated    int                  `json:"evaluated"`
	Transitioned int                  `json:"transitioned"`
	Failed       int                  `json:"failed"`
	Results      []transitionResponse `json:"results"`
}

// handleSweep runs an expiration sweep on demand. Per-campaign failures are
// reported in the body; the request only fails when the sweep could not
// start.
func (h *Handler) handleSweep(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.SweepExpired(r.Context())
	if err != nil && results == nil {
		h.writeError(w, r, err)
		return
	}
	out := sweepResponse{Evaluated: len(results), Results: make([]transitionResponse, 0, len(results))}
	for _, res := range results {
		if res.Err != nil {
			out.Failed++
		} else if res.Changed() {
			out.Transitioned++
		}
		out.Results = append(out.Results, newTransitionResponse(res, res.Err))
	}
	h.writeJSON(w, http.StatusOK, out)
}

type reminderResponse struct {
	CampaignID int64          `json:"campaign_id"`
	Notify     notifyResponse `json:"notification"`
}

// handleReminders sends one round of payment verification reminders.
func (h *Handler) handleReminders(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.RemindPendingVerification(r.Context())
	if err != nil && results == nil {
		h.writeError(w, r, err)
		return
	}
	out := make([]reminderResponse, 0, len(results))
	for _, res := range results {
		out = append(out, reminderResponse{CampaignID: res.CampaignID, Notify: newNotifyResponse(res.Notify, res.Err)})
	}
	h.writeJSON(w, http.StatusOK, out)
}
