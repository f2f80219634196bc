package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db   *sqlx.DB
	psql sq.StatementBuilderType
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{
		db:   db,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type UserRepositoryFilter struct {
	Username    *string
	IsSuperuser *bool
}

func (ur *UserRepository) buildQuery(filter UserRepositoryFilter, queryType QueryType) (string, []any, error) {
	var builder sq.SelectBuilder
	switch queryType {
	case QueryTypeSelect:
		builder = ur.psql.Select("*").From("users")
	case QueryTypeCount:
		builder = ur.psql.Select("COUNT(*)").From("users")
	}

	if filter.Username != nil {
		builder = builder.Where(sq.Eq{"username": *filter.Username})
	}
	if filter.IsSuperuser != nil {
		builder = builder.Where(sq.Eq{"is_superuser": *filter.IsSuperuser})
	}

	return builder.ToSql()
}

func (ur *UserRepository) Exists(ctx context.Context, filter UserRepositoryFilter) (bool, error) {
	query, args, err := ur.buildQuery(filter, QueryTypeCount)
	if err != nil {
		return false, err
	}

	var count int
	if err := ur.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *UserRepository) Create(ctx context.Context, user *User, tx *sqlx.Tx) (*User, error) {
	builder := ur.psql.Insert("users").
		Columns("username", "password", "first_name", "last_name", "email", "active", "is_superuser", "created_at", "updated_at").
		Values(user.Username, user.Password, user.FirstName, user.LastName, user.Email, user.Active, user.IsSuperuser, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("RETURNING *")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var createdUser User
	if tx != nil {
		err = tx.GetContext(ctx, &createdUser, query, args...)
		return &createdUser, err
	}

	err = ur.db.GetContext(ctx, &createdUser, query, args...)
	return &createdUser, err
}

// FirstSuperuser returns the oldest active superuser account. Bootstrap rows
// are attributed to it.
func (ur *UserRepository) FirstSuperuser(ctx context.Context) (*User, error) {
	query, args, err := ur.psql.Select("*").
		From("users").
		Where(sq.Eq{"active": true, "is_superuser": true}).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user User
	if err := ur.db.GetContext(ctx, &user, query, args...); err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureSelfRequestDoctor inserts the synthetic account that owns
// self-requested consultations. Re-running is a no-op.
func (ur *UserRepository) EnsureSelfRequestDoctor(ctx context.Context) error {
	query, args, err := ur.psql.Insert("users").
		Columns("username", "password", "first_name", "last_name", "email", "active", "is_superuser", "created_at", "updated_at").
		Values("selfrequest", "self-request-password", "Self", "Request", "self-request@eclinichms.com", false, false, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	_, err = ur.db.ExecContext(ctx, query, args...)
	return err
}
