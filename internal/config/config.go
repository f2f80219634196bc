package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ConfigError reports missing or unparseable connection settings. All PG*
// variables must be present before any database work starts; PGSSLMODE and
// PGTZ are required to exist but their contents are left to the server.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid environment configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

type DatabaseConfig struct {
	Host     string `env:"PGHOST,required,notEmpty"`
	Port     string `env:"PGPORT" envDefault:"5432"`
	Name     string `env:"PGDATABASE,required,notEmpty"`
	User     string `env:"PGUSER,required,notEmpty"`
	Password string `env:"PGPASSWORD,required,notEmpty"`
	SSLMode  string `env:"PGSSLMODE,required,notEmpty"`
	Timezone string `env:"PGTZ,required,notEmpty"`
}

// ConnString assembles the connection URL the same way psql would from the
// PG* variables.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

type Config struct {
	Database DatabaseConfig
	Debug    bool `env:"DEBUG" envDefault:"false"`
}

// New loads the dotenv file (if it exists) and parses the environment.
// A missing dotenv file is not an error; the system environment may already
// carry the PG* variables.
func New(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Printf("No %s file found, using environment variables", envFile)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return cfg, nil
}
