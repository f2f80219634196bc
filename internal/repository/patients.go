package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type PatientRepository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewPatientRepository(db *sqlx.DB) *PatientRepository {
	return &PatientRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// EnsureOTCPatient inserts the synthetic walk-in patient used for
// over-the-counter sales, attributed to the given superuser.
func (pr *PatientRepository) EnsureOTCPatient(ctx context.Context, registeredBy int64) error {
	query, args, err := pr.psql.Insert("patients").
		Columns("name", "birth_date", "marital_status", "registered_by", "sex", "created_at", "updated_at", "address", "religion").
		Values("OVER THE COUNTER", "2060-01-01", "Married", registeredBy, "Male", sq.Expr("NOW()"), sq.Expr("NOW()"), "NOT APPLICABLE", "Other").
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	_, err = pr.db.ExecContext(ctx, query, args...)
	return err
}
