package httpadapter

import (
	"encoding/json"
	"net/http"

	"crowdfund-lifecycle/internal/core/domain"
)

type notifyRequest struct {
	Kind              domain.Kind     `json:"kind"`
	Payload           json.RawMessage `json:"payload"`
	FallbackRecipient int64           `json:"fallback_recipient_id"`
}

func decodeNotifyRequest(r *http.Request) (notifyRequest, bool) {
	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, false
	}
	return req, req.Kind != ""
}

// handleNotifyOwner sends a deduplicated notification to the campaign owner.
func (h *Handler) handleNotifyOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	req, ok := decodeNotifyRequest(r)
	if !ok {
		http.Error(w, "invalid notification request", http.StatusBadRequest)
		return
	}
	res, err := h.svc.NotifyOwner(r.Context(), id, req.Kind, req.Payload)
	h.writeNotify(w, r, newNotifyResponse(res, err), err)
}

// handleNotifyBackoffice sends a deduplicated notification about the
// campaign to the backoffice.
func (h *Handler) handleNotifyBackoffice(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		http.Error(w, "invalid campaign id", http.StatusBadRequest)
		return
	}
	req, ok := decodeNotifyRequest(r)
	if !ok {
		http.Error(w, "invalid notification request", http.StatusBadRequest)
		return
	}
	res, err := h.svc.NotifyBackoffice(r.Context(), id, req.Kind, req.Payload, req.FallbackRecipient)
	h.writeNotify(w, r, newNotifyResponse(res, err), err)
}

// writeNotify answers 502 with the notification body when the claim was
// made but dispatch failed.
func (h *Handler) writeNotify(w http.ResponseWriter, r *http.Request, out notifyResponse, err error) {
	if err == nil {
		h.writeJSON(w, http.StatusOK, out)
		return
	}
	status := statusFor(err)
	if status == http.StatusBadGateway {
		h.writeJSON(w, status, out)
		return
	}
	h.writeError(w, r, err)
}
