package factory

import (
	"github.com/eclinichms/eclinic-admin/internal/admin"
	"github.com/eclinichms/eclinic-admin/internal/config"
	"github.com/eclinichms/eclinic-admin/internal/psql"
	"github.com/eclinichms/eclinic-admin/internal/repository"
	"github.com/eclinichms/eclinic-admin/internal/upload"
	"github.com/eclinichms/eclinic-admin/pkg/database"
	"github.com/eclinichms/eclinic-admin/pkg/logger"
)

type Repositories struct {
	User      *repository.UserRepository
	Inventory *repository.InventoryRepository
	Patient   *repository.PatientRepository
}

type Factory struct {
	Config       *config.Config
	Log          *logger.Logger
	DB           *database.PostgresDB
	Uploader     *upload.Executor
	Admin        *admin.Service
	Psql         *psql.Runner
	Repositories *Repositories
}

func New(cfg *config.Config) (*Factory, func(), error) {
	log := logger.New(cfg)

	db, cleanup, err := database.New(cfg.Database.ConnString())
	if err != nil {
		return nil, nil, err
	}

	userRepo := repository.NewUserRepository(db.DB)
	inventoryRepo := repository.NewInventoryRepository(db.DB)
	patientRepo := repository.NewPatientRepository(db.DB)

	return &Factory{
		Config:   cfg,
		Log:      log,
		DB:       db,
		Uploader: upload.NewExecutor(db.DB, log),
		Admin:    admin.New(userRepo, inventoryRepo, patientRepo, log),
		Psql:     psql.NewRunner(cfg.Database, log),
		Repositories: &Repositories{
			User:      userRepo,
			Inventory: inventoryRepo,
			Patient:   patientRepo,
		},
	}, cleanup, nil
}
