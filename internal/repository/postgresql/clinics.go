package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/voicecare/voicemail_triage/internal/domain"
)

const TableClinics = "clinics"

var clinicColumns = []string{
	"id",
	"name",
	"email",
	"ingest_email_token",
	"is_active",
}

type ClinicsRepository struct {
	pool Pool
	qb   sq.StatementBuilderType
}

func NewClinicsRepository(pool Pool) *ClinicsRepository {
	return &ClinicsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ClinicByToken returns the active clinic owning an ingest token.
func (r *ClinicsRepository) ClinicByToken(ctx context.Context, token string) (*domain.Clinic, error) {
	return r.clinicBy(ctx, sq.Eq{"ingest_email_token": token, "is_active": true})
}

func (r *ClinicsRepository) ClinicByID(ctx context.Context, id int64) (*domain.Clinic, error) {
	return r.clinicBy(ctx, sq.Eq{"id": id})
}

func (r *ClinicsRepository) ActiveClinics(ctx context.Context) ([]*domain.Clinic, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(clinicColumns...).
		From(TableClinics).
		Where(sq.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	clinics, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Clinic])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return clinics, nil
}

func (r *ClinicsRepository) clinicBy(ctx context.Context, where sq.Eq) (*domain.Clinic, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(clinicColumns...).
		From(TableClinics).
		Where(where).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	clinic, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Clinic])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return clinic, nil
}
