package postgresql

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

const TableVoicemails = "voicemails"

var voicemailColumns = []string{
	"id",
	"clinic_id",
	"filename",
	"audio_key",
	"audio_duration",
	"source",
	"received_at",
	"status",
	"status_changed_at",
	"claimed_by",
	"retry_count",
	"last_error_at",
	"failure_reason",
	"transcript",
	"transcription_confidence",
	"transcription_provider",
	"transcribed_at",
	"patient_name",
	"patient_dob",
	"patient_phone",
	"call_reason",
	"extracted_at",
	"summary",
	"triage_category",
	"urgency_level",
	"recommended_action",
	"summarized_at",
}

type VoicemailsRepository struct {
	pool Pool
	qb   sq.StatementBuilderType
}

func NewVoicemailsRepository(pool Pool) *VoicemailsRepository {
	return &VoicemailsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *VoicemailsRepository) CreateVoicemail(ctx context.Context, vm *domain.Voicemail) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableVoicemails).
		Columns(
			"clinic_id",
			"filename",
			"audio_key",
			"audio_duration",
			"source",
			"received_at",
			"status",
			"status_changed_at",
		).
		Values(
			vm.ClinicID,
			vm.Filename,
			vm.AudioKey,
			vm.AudioDuration,
			vm.Source,
			vm.ReceivedAt,
			vm.Status,
			vm.StatusAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&vm.ID); err != nil {
		return scanRowError(err)
	}

	return nil
}

func (r *VoicemailsRepository) VoicemailByID(ctx context.Context, id int64) (*domain.Voicemail, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(voicemailColumns...).
		From(TableVoicemails).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	vm, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Voicemail])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return vm, nil
}

// VoicemailsByClinic returns a page of a clinic's voicemails, newest first,
// and the total count. A nil status matches every status.
func (r *VoicemailsRepository) VoicemailsByClinic(
	ctx context.Context,
	clinicID int64,
	status *domain.Status,
	limit, offset uint64,
) ([]*domain.Voicemail, int, error) {
	db := extractDB(ctx, r.pool)

	where := sq.Eq{"clinic_id": clinicID}
	if status != nil {
		where["status"] = *status
	}

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableVoicemails).
		Where(where).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(voicemailColumns...).
		From(TableVoicemails).
		Where(where).
		OrderBy("id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	voicemails, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Voicemail])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return voicemails, total, nil
}

// UpdateVoicemail writes lifecycle and pipeline output columns, guarded by the
// expected current status.
func (r *VoicemailsRepository) UpdateVoicemail(ctx context.Context, vm *domain.Voicemail, from domain.Status) (bool, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableVoicemails).
		SetMap(map[string]any{
			"status":                   vm.Status,
			"status_changed_at":        vm.StatusAt,
			"claimed_by":               vm.ClaimedBy,
			"retry_count":              vm.RetryCount,
			"last_error_at":            vm.LastErrorAt,
			"failure_reason":           vm.FailureReason,
			"transcript":               vm.Transcript,
			"transcription_confidence": vm.TranscriptionConfidence,
			"transcription_provider":   vm.TranscriptionProvider,
			"transcribed_at":           vm.TranscribedAt,
			"patient_name":             vm.PatientName,
			"patient_dob":              vm.PatientDOB,
			"patient_phone":            vm.PatientPhone,
			"call_reason":              vm.CallReason,
			"extracted_at":             vm.ExtractedAt,
			"summary":                  vm.Summary,
			"triage_category":          vm.TriageCategory,
			"urgency_level":            vm.UrgencyLevel,
			"recommended_action":       vm.RecommendedAction,
			"summarized_at":            vm.SummarizedAt,
		}).
		Where(sq.Eq{"id": vm.ID, "status": from}).
		ToSql()
	if err != nil {
		return false, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return false, executeQueryError(err)
	}

	return tag.RowsAffected() == 1, nil
}

// LockNextReceived must run inside a transaction for the row lock to hold
// until the claim commits.
func (r *VoicemailsRepository) LockNextReceived(ctx context.Context) (*domain.Voicemail, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(voicemailColumns...).
		From(TableVoicemails).
		Where(sq.Eq{"status": domain.StatusReceived}).
		OrderBy("id ASC").
		Limit(1).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	vm, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Voicemail])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return vm, nil
}

func (r *VoicemailsRepository) StaleVoicemails(
	ctx context.Context,
	statuses []domain.Status,
	changedBefore time.Time,
) ([]*domain.Voicemail, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(voicemailColumns...).
		From(TableVoicemails).
		Where(sq.Eq{"status": statuses}).
		Where(sq.Lt{"status_changed_at": changedBefore}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	voicemails, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Voicemail])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return voicemails, nil
}

// VoicemailsWithoutCard returns finished voicemails that have a transcript but
// no triage card yet.
func (r *VoicemailsRepository) VoicemailsWithoutCard(
	ctx context.Context,
	statuses []domain.Status,
	limit uint64,
) ([]*domain.Voicemail, error) {
	db := extractDB(ctx, r.pool)

	columns := make([]string, len(voicemailColumns))
	for i, column := range voicemailColumns {
		columns[i] = "v." + column
	}

	sql, args, err := r.qb.
		Select(columns...).
		From(TableVoicemails + " v").
		LeftJoin(TableTriageCards + " c ON c.voicemail_id = v.id").
		Where(sq.Eq{"v.status": statuses}).
		Where(sq.NotEq{"v.transcript": nil}).
		Where(sq.Eq{"c.id": nil}).
		OrderBy("v.id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	voicemails, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Voicemail])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return voicemails, nil
}
