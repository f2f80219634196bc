// Package admin holds the provisioning operations that are not CSV-driven:
// superuser creation and the bootstrap rows the clinic app expects.
package admin

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/eclinichms/eclinic-admin/internal/repository"
	"github.com/eclinichms/eclinic-admin/pkg/logger"
	"github.com/eclinichms/eclinic-admin/pkg/password"
)

type Service struct {
	users    *repository.UserRepository
	items    *repository.InventoryRepository
	patients *repository.PatientRepository
	validate *validator.Validate
	log      *logger.Logger
}

func New(
	users *repository.UserRepository,
	items *repository.InventoryRepository,
	patients *repository.PatientRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		users:    users,
		items:    items,
		patients: patients,
		validate: validator.New(),
		log:      log,
	}
}

type SuperuserInput struct {
	Username  string `validate:"required,min=3,max=64"`
	FirstName string `validate:"required,max=24"`
	LastName  string `validate:"required,max=24"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
}

// CreateSuperuser validates the input, hashes the password and inserts the
// account. A duplicate username fails; superusers are never silently
// overwritten.
func (s *Service) CreateSuperuser(ctx context.Context, in SuperuserInput) (*repository.User, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid superuser input: %w", err)
	}

	exists, err := s.users.Exists(ctx, repository.UserRepositoryFilter{Username: &in.Username})
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("user %s already exists", in.Username)
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &repository.User{
		Username:    in.Username,
		Password:    hash,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Active:      true,
		IsSuperuser: true,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create superuser: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("superuser account created")
	return user, nil
}
