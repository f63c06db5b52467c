package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/voicecare/voicemail_triage/internal/domain"
)

type DigestHandler struct {
	log    *slog.Logger
	sender DigestSender
}

func NewDigestHandler(log *slog.Logger, sender DigestSender) *DigestHandler {
	return &DigestHandler{
		log:    log,
		sender: sender,
	}
}

type SendDigestResponse struct {
	ClinicID       int64 `json:"clinic_id"`
	Skipped        bool  `json:"skipped"`
	Total          int   `json:"total"`
	UrgentCount    int   `json:"urgent_count"`
	NonUrgentCount int   `json:"non_urgent_count"`
}

// SendDigest runs the digest for one clinic right away.
func (h *DigestHandler) SendDigest(w http.ResponseWriter, r *http.Request) {
	clinicID, err := int64Param(r, "clinic_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.sender.SendByClinicID(r.Context(), clinicID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "clinic not found", http.StatusNotFound)
			return
		}

		h.log.ErrorContext(r.Context(), "manual digest failed",
			slog.Int64("clinic_id", clinicID),
			slog.String("err", err.Error()),
		)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, SendDigestResponse{
		ClinicID:       result.ClinicID,
		Skipped:        result.Skipped,
		Total:          result.Message.Total,
		UrgentCount:    result.Message.UrgentCount,
		NonUrgentCount: result.Message.NonUrgentCount,
	})
}
