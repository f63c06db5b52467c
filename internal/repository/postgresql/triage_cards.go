package postgresql

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

const TableTriageCards = "triage_cards"

var triageCardColumns = []string{
	"id",
	"voicemail_id",
	"clinic_id",
	"summary",
	"urgency",
	"crisis_flag",
	"needs_review",
	"created_at",
	"digest_sent_at",
}

type TriageCardsRepository struct {
	pool Pool
	qb   sq.StatementBuilderType
}

func NewTriageCardsRepository(pool Pool) *TriageCardsRepository {
	return &TriageCardsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// CreateTriageCard inserts card unless the voicemail already has one. It
// reports whether a row was created.
func (r *TriageCardsRepository) CreateTriageCard(ctx context.Context, card *domain.TriageCard) (bool, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableTriageCards).
		Columns(
			"voicemail_id",
			"clinic_id",
			"summary",
			"urgency",
			"crisis_flag",
			"needs_review",
			"created_at",
		).
		Values(
			card.VoicemailID,
			card.ClinicID,
			card.Summary,
			card.Urgency,
			card.CrisisFlag,
			card.NeedsReview,
			card.CreatedAt,
		).
		Suffix("ON CONFLICT (voicemail_id) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return false, createQueryError(err)
	}

	err = db.QueryRow(ctx, sql, args...).Scan(&card.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, scanRowError(err)
	}

	return true, nil
}

// LockUnsentCards selects a clinic's cards awaiting a digest: created at or
// after since, or urgent regardless of age. Rows stay locked until the
// surrounding transaction ends.
func (r *TriageCardsRepository) LockUnsentCards(ctx context.Context, clinicID int64, since time.Time) ([]*domain.TriageCard, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(triageCardColumns...).
		From(TableTriageCards).
		Where(sq.Eq{"clinic_id": clinicID, "digest_sent_at": nil}).
		Where(sq.Or{
			sq.GtOrEq{"created_at": since},
			sq.Eq{"urgency": domain.UrgencyUrgent},
		}).
		OrderBy("id ASC").
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	cards, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.TriageCard])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return cards, nil
}

// MarkDigestSent stamps digest_sent_at on still unsent cards and returns the
// number of rows changed.
func (r *TriageCardsRepository) MarkDigestSent(ctx context.Context, ids []int64, sentAt time.Time) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableTriageCards).
		Set("digest_sent_at", sentAt).
		Where(sq.Eq{"id": ids, "digest_sent_at": nil}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *TriageCardsRepository) CardsByClinic(ctx context.Context, clinicID int64, from, to time.Time) ([]*domain.TriageCard, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(triageCardColumns...).
		From(TableTriageCards).
		Where(sq.Eq{"clinic_id": clinicID}).
		Where(sq.GtOrEq{"created_at": from}).
		Where(sq.Lt{"created_at": to}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	cards, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.TriageCard])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return cards, nil
}
