package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

const TableDigestLogs = "digest_logs"

type DigestLogsRepository struct {
	pool Pool
	qb   sq.StatementBuilderType
}

func NewDigestLogsRepository(pool Pool) *DigestLogsRepository {
	return &DigestLogsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateDigestLog appends a log row. Digest logs are never updated.
func (r *DigestLogsRepository) CreateDigestLog(ctx context.Context, entry *domain.DigestLog) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableDigestLogs).
		Columns(
			"clinic_id",
			"sent_at",
			"total_voicemails",
			"urgent_count",
			"non_urgent_count",
			"status",
			"error_message",
		).
		Values(
			entry.ClinicID,
			entry.SentAt,
			entry.TotalVoicemails,
			entry.UrgentCount,
			entry.NonUrgentCount,
			entry.Status,
			entry.ErrorMessage,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&entry.ID); err != nil {
		return scanRowError(err)
	}

	return nil
}
