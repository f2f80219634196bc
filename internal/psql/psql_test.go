package psql

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eclinichms/eclinic-admin/internal/config"
	"github.com/eclinichms/eclinic-admin/pkg/logger"
)

func TestCopyCommand(t *testing.T) {
	assert.Equal(t,
		`\COPY diagnosis_categories(category) FROM /data/categories.csv DELIMITER ',' CSV HEADER`,
		CopyCommand("diagnosis_categories", "category", "/data/categories.csv", true),
	)
	assert.Equal(t,
		`\COPY diagnosis_categories(category) FROM /data/categories.csv DELIMITER ',' CSV`,
		CopyCommand("diagnosis_categories", "category", "/data/categories.csv", false),
	)
}

func TestRunnerEnv(t *testing.T) {
	cfg := config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5432",
		Name:     "eclinic",
		User:     "clinic_admin",
		Password: "s3cret",
		SSLMode:  "require",
		Timezone: "Africa/Kampala",
	}
	r := NewRunner(cfg, logger.New(&config.Config{}))

	env := r.env()
	assert.Contains(t, env, "PGHOST=db.internal")
	assert.Contains(t, env, "PGDATABASE=eclinic")
	assert.Contains(t, env, "PGSSLMODE=require")
	assert.Contains(t, env, "PGTZ=Africa/Kampala")
}
