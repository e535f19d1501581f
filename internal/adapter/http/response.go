package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"crowdfund-lifecycle/internal/core/domain"
	"crowdfund-lifecycle/internal/core/port"
)

type transitionResponse struct {
	CampaignID           int64        `json:"campaign_id"`
	OldState             domain.State `json:"old_state"`
	NewState             domain.State `json:"new_state"`
	Changed              bool         `json:"changed"`
	NotificationsEmitted int          `json:"notifications_emitted"`
	Error                string       `json:"error,omitempty"`
}

func newTransitionResponse(res port.TransitionResult, err error) transitionResponse {
	out := transitionResponse{
		CampaignID:           res.CampaignID,
		OldState:             res.OldState,
		NewState:             res.NewState,
		Changed:              res.Changed(),
		NotificationsEmitted: res.NotificationsEmitted,
	}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

type notifyResponse struct {
	RecipientID int64       `json:"recipient_id"`
	Kind        domain.Kind `json:"kind"`
	Dispatched  bool        `json:"dispatched"`
	Skipped     bool        `json:"skipped,omitempty"`
	Error       string      `json:"error,omitempty"`
}

func newNotifyResponse(res port.NotifyResult, err error) notifyResponse {
	out := notifyResponse{
		RecipientID: res.RecipientID,
		Kind:        res.Kind,
		Dispatched:  res.Dispatched,
		Skipped:     res.Skipped,
	}
	if err != nil {
		out.Error = err.Error()
	}
	return out
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCampaign):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDispatchFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError writes err with its mapped status. Internal errors are logged
// and replaced by a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		msg = "internal error"
	}
	h.writeJSON(w, status, errorResponse{Error: msg})
}

func campaignID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
