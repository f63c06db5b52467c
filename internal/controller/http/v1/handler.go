package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

const (
	dateLayout       = "2006-01-02"
	defaultExportAge = 7 * 24 * time.Hour
)

type VoicemailsHandler struct {
	voicemails  VoicemailsRepository
	transitions TransitionProvider
	cards       CardProvider
	now         func() time.Time
}

func NewVoicemailsHandler(voicemails VoicemailsRepository, transitions TransitionProvider, cards CardProvider) *VoicemailsHandler {
	return &VoicemailsHandler{
		voicemails:  voicemails,
		transitions: transitions,
		cards:       cards,
		now:         time.Now,
	}
}

type GetVoicemailResponse struct {
	Voicemail   *domain.Voicemail    `json:"voicemail"`
	Transitions []*domain.Transition `json:"transitions"`
}

func (h *VoicemailsHandler) GetVoicemail(w http.ResponseWriter, r *http.Request) {
	id, err := int64Param(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vm, err := h.voicemails.VoicemailByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "voicemail not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	transitions, err := h.transitions.TransitionsByVoicemail(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetVoicemailResponse{
		Voicemail:   vm,
		Transitions: transitions,
	})
}

type GetClinicVoicemailsResponse struct {
	Voicemails []*domain.Voicemail `json:"voicemails"`
	Pagination Pagination          `json:"pagination"`
}

func (h *VoicemailsHandler) GetClinicVoicemails(w http.ResponseWriter, r *http.Request) {
	clinicID, err := int64Param(r, "clinic_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var status *domain.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := domain.ParseStatus(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		status = &parsed
	}

	offset := (page - 1) * limit

	voicemails, total, err := h.voicemails.VoicemailsByClinic(r.Context(), clinicID, status, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetClinicVoicemailsResponse{
		Voicemails: voicemails,
		Pagination: newPagination(page, limit, total),
	})
}

// ExportTriageCards streams a clinic's triage cards created in [from, to) as
// CSV. Dates are YYYY-MM-DD; the default range is the last seven days.
func (h *VoicemailsHandler) ExportTriageCards(w http.ResponseWriter, r *http.Request) {
	clinicID, err := int64Param(r, "clinic_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	from, to, err := h.parseRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cards, err := h.cards.CardsByClinic(r.Context(), clinicID, from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data, err := csvutil.Marshal(cards)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=triage_cards_%d.csv", clinicID))
	w.Write(data)
}

func (h *VoicemailsHandler) parseRange(r *http.Request) (from, to time.Time, err error) {
	to = h.now().UTC()
	from = to.Add(-defaultExportAge)

	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid from, expected YYYY-MM-DD")
		}
	}

	if raw := r.URL.Query().Get("to"); raw != "" {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errors.New("invalid to, expected YYYY-MM-DD")
		}
		to = day.Add(24 * time.Hour)
	}

	if !from.Before(to) {
		return time.Time{}, time.Time{}, errors.New("from must be before to")
	}

	return from, to, nil
}
