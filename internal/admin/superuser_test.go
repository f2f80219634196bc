package admin

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eclinichms/eclinic-admin/internal/config"
	"github.com/eclinichms/eclinic-admin/internal/repository"
	"github.com/eclinichms/eclinic-admin/pkg/logger"
	"github.com/eclinichms/eclinic-admin/pkg/password"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	db.Mapper = reflectx.NewMapper("json")

	svc := New(
		repository.NewUserRepository(db),
		repository.NewInventoryRepository(db),
		repository.NewPatientRepository(db),
		logger.New(&config.Config{}),
	)
	return svc, mock
}

func validInput() SuperuserInput {
	return SuperuserInput{
		Username:  "admin",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "admin@eclinichms.com",
		Password:  "longenoughpassword",
	}
}

func userRow(username, hash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "username", "title", "first_name", "last_name", "email",
		"password", "active", "is_superuser", "created_at", "updated_at",
	}).AddRow(int64(1), username, nil, "Jane", "Doe", "admin@eclinichms.com", hash, true, true, now, now)
}

func TestCreateSuperuserValidation(t *testing.T) {
	svc, mock := newMockService(t)

	tests := []struct {
		name   string
		mutate func(*SuperuserInput)
	}{
		{"short password", func(in *SuperuserInput) { in.Password = "short" }},
		{"bad email", func(in *SuperuserInput) { in.Email = "not-an-email" }},
		{"empty username", func(in *SuperuserInput) { in.Username = "" }},
		{"empty first name", func(in *SuperuserInput) { in.FirstName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := svc.CreateSuperuser(context.Background(), in)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid superuser input")
		})
	}

	// Validation failures never reach the store.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSuperuser(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	hash, err := password.Hash("longenoughpassword")
	require.NoError(t, err)
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(userRow("admin", hash))

	user, err := svc.CreateSuperuser(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.True(t, user.IsSuperuser)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSuperuserDuplicate(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.CreateSuperuser(context.Background(), validInput())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrap(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT \\* FROM users").
		WillReturnRows(userRow("admin", "hash"))
	mock.ExpectExec("INSERT INTO inventory_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO inventory_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO patients").
		WithArgs("OVER THE COUNTER", "2060-01-01", "Married", int64(1), "Male", "NOT APPLICABLE", "Other").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Bootstrap(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrapWithoutSuperuser(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT \\* FROM users").
		WillReturnError(sql.ErrNoRows)

	err := svc.Bootstrap(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no superuser account found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
