package v1

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/voicecare/voicemail_triage/internal/domain"
)

const DefaultMaxUploadBytes = 32 << 20

var errNoAudio = errors.New("no audio attachment found")

type IngestHandler struct {
	log            *slog.Logger
	clinics        ClinicProvider
	voicemails     VoicemailsRepository
	audio          AudioStore
	waker          Waker
	maxUploadBytes int64
	now            func() time.Time
}

func NewIngestHandler(
	log *slog.Logger,
	clinics ClinicProvider,
	voicemails VoicemailsRepository,
	audio AudioStore,
	waker Waker,
	maxUploadBytes int64,
) *IngestHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}

	return &IngestHandler{
		log:            log,
		clinics:        clinics,
		voicemails:     voicemails,
		audio:          audio,
		waker:          waker,
		maxUploadBytes: maxUploadBytes,
		now:            time.Now,
	}
}

type IngestResponse struct {
	VoicemailID int64         `json:"voicemail_id"`
	Status      domain.Status `json:"status"`
}

// IngestEmail accepts the email webhook: a multipart form with the recipient
// address and the audio file. The clinic token is the local part of the
// recipient.
func (h *IngestHandler) IngestEmail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	token, err := tokenFromAddress(r.FormValue("recipient"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	h.ingest(w, r, token, header.Filename, file, domain.SourceEmail)
}

// IngestUpload accepts a direct upload authenticated by the clinic token.
func (h *IngestHandler) IngestUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	token := strings.TrimSpace(r.FormValue("token"))
	if token == "" {
		http.Error(w, "missing token", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	h.ingest(w, r, token, header.Filename, file, domain.SourceUpload)
}

// IngestRawEmail accepts a raw RFC 822 message as forwarded by a mail relay
// and ingests its first audio attachment.
func (h *IngestHandler) IngestRawEmail(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	msg, err := mail.ReadMessage(r.Body)
	if err != nil {
		http.Error(w, "invalid email message", http.StatusBadRequest)
		return
	}

	token, err := tokenFromAddress(msg.Header.Get("To"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filename, audio, err := firstAudioAttachment(msg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.ingest(w, r, token, filename, audio, domain.SourceEmail)
}

func (h *IngestHandler) ingest(w http.ResponseWriter, r *http.Request, token, filename string, audio io.Reader, source domain.Source) {
	ctx := r.Context()

	clinic, err := h.clinics.ClinicByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, domain.ErrInvalidToken.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log := h.log.With(slog.Int64("clinic_id", clinic.ID), slog.String("source", string(source)))

	key, err := h.audio.Save(ctx, filename, audio)
	if err != nil {
		log.ErrorContext(ctx, "failed to store audio", slog.String("err", err.Error()))
		http.Error(w, "failed to store audio", http.StatusInternalServerError)
		return
	}

	vm := domain.NewVoicemail(clinic.ID, filename, key, source, h.now().UTC())
	if err := h.voicemails.CreateVoicemail(ctx, vm); err != nil {
		log.ErrorContext(ctx, "failed to create voicemail", slog.String("err", err.Error()))
		if err := h.audio.Delete(context.WithoutCancel(ctx), key); err != nil {
			log.WarnContext(ctx, "failed to remove orphaned audio", slog.String("key", key), slog.String("err", err.Error()))
		}
		http.Error(w, "failed to create voicemail", http.StatusInternalServerError)
		return
	}

	log.InfoContext(ctx, "voicemail received", slog.Int64("voicemail_id", vm.ID), slog.String("filename", filename))

	h.waker.Wake()

	writeJSON(w, http.StatusCreated, IngestResponse{VoicemailID: vm.ID, Status: vm.Status})
}

func tokenFromAddress(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("missing recipient")
	}

	address := raw
	if list, err := mail.ParseAddressList(raw); err == nil && len(list) > 0 {
		address = list[0].Address
	}

	local, _, ok := strings.Cut(address, "@")
	local = strings.ToLower(strings.TrimSpace(local))
	if !ok || local == "" {
		return "", fmt.Errorf("invalid recipient %q", raw)
	}

	return local, nil
}

func firstAudioAttachment(msg *mail.Message) (string, io.Reader, error) {
	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil {
		return "", nil, fmt.Errorf("invalid content type: %w", err)
	}

	if !strings.HasPrefix(mediaType, "multipart/") {
		if strings.HasPrefix(mediaType, "audio/") {
			return "voicemail" + extension(mediaType), decodeTransfer(msg.Body, msg.Header.Get("Content-Transfer-Encoding")), nil
		}
		return "", nil, errNoAudio
	}

	return findAudioPart(multipart.NewReader(msg.Body, params["boundary"]))
}

func findAudioPart(mr *multipart.Reader) (string, io.Reader, error) {
	for {
		part, err := mr.NextRawPart()
		if errors.Is(err, io.EOF) {
			return "", nil, errNoAudio
		}
		if err != nil {
			return "", nil, fmt.Errorf("failed to read mime part: %w", err)
		}

		mediaType, params, err := mime.ParseMediaType(part.Header.Get("Content-Type"))
		if err != nil {
			continue
		}

		switch {
		case strings.HasPrefix(mediaType, "multipart/"):
			filename, audio, err := findAudioPart(multipart.NewReader(part, params["boundary"]))
			if errors.Is(err, errNoAudio) {
				continue
			}
			return filename, audio, err

		case strings.HasPrefix(mediaType, "audio/"):
			filename := part.FileName()
			if filename == "" {
				filename = "voicemail" + extension(mediaType)
			}
			return filename, decodeTransfer(part, part.Header.Get("Content-Transfer-Encoding")), nil
		}
	}
}

func decodeTransfer(r io.Reader, encoding string) io.Reader {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "base64":
		return base64.NewDecoder(base64.StdEncoding, r)
	case "quoted-printable":
		return quotedprintable.NewReader(r)
	default:
		return r
	}
}

func extension(mediaType string) string {
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ".audio"
}
