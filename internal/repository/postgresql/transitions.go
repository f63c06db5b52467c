package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

const TableTransitions = "voicemail_transitions"

type TransitionsRepository struct {
	pool Pool
	qb   sq.StatementBuilderType
}

func NewTransitionsRepository(pool Pool) *TransitionsRepository {
	return &TransitionsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *TransitionsRepository) InsertTransition(ctx context.Context, transition *domain.Transition) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableTransitions).
		Columns(
			"voicemail_id",
			"from_status",
			"to_status",
			"reason",
			"created_at",
		).
		Values(
			transition.VoicemailID,
			transition.From,
			transition.To,
			transition.Reason,
			transition.CreatedAt,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

func (r *TransitionsRepository) TransitionsByVoicemail(ctx context.Context, voicemailID int64) ([]*domain.Transition, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"voicemail_id",
			"from_status",
			"to_status",
			"reason",
			"created_at",
		).
		From(TableTransitions).
		Where(sq.Eq{"voicemail_id": voicemailID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	transitions, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Transition])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return transitions, nil
}
