package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund-lifecycle/internal/core/domain"
)

// handleEvaluate applies the expiration rule to one campaign. A dispatch
// failure still reports the applied transition, with HTTP 502.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Evaluate(r.Context(), id)
	if err != nil && !errors.Is(err, domain.ErrDispatchFailure) {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if err != nil {
		status = http.StatusBadGateway
	}
	h.writeJSON(w, status, newTransitionResponse(res, err))
}

func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	snap, err := h.svc.Snapshot(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}

func (h *Handler) handleTotals(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	totals, err := h.svc.Totals(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, totals)
}

type campaignResponse struct {
	ID         int64        `json:"id"`
	OwnerID    int64        `json:"owner_id"`
	Name       string       `json:"name"`
	Permalink  string       `json:"permalink"`
	Goal       string       `json:"goal"`
	OnlineDays int          `json:"online_days"`
	OnlineAt   *string      `json:"online_at,omitempty"`
	ExpiresAt  *string      `json:"expires_at,omitempty"`
	State      domain.State `json:"state"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	out := campaignResponse{
		ID:         c.ID,
		OwnerID:    c.OwnerID,
		Name:       c.Name,
		Permalink:  c.Permalink,
		Goal:       c.Goal.String(),
		OnlineDays: c.OnlineDays,
		State:      c.State,
	}
	if c.OnlineAt != nil {
		onlineAt := c.OnlineAt.UTC().Format(timeLayout)
		out.OnlineAt = &onlineAt
	}
	if expiresAt, ok := c.ExpiresAt(); ok {
		s := expiresAt.UTC().Format(timeLayout)
		out.ExpiresAt = &s
	}
	return out
}

// handleFindByPermalink returns the campaign for a {permalink} path
// parameter. Unknown or deleted campaigns result in HTTP 404.
func (h *Handler) handleFindByPermalink(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.FindByPermalink(r.Context(), chi.URLParam(r, "permalink"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

type moderateRequest struct {
	State domain.State `json:"state"`
}

// handleModerate applies a moderation decision. Unreachable target states
// result in HTTP 409.
func (h *Handler) handleModerate(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	var req moderateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if !req.State.Valid() {
		http.Error(w, "unknown state", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Moderate(r.Context(), id, req.State)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newTransitionResponse(res, nil))
}
