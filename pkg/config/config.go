package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port                    string `env:"PORT" envDefault:"8080"`
	Env                     string `env:"ENV" envDefault:"development"`
	PostgresConnStr         string `env:"POSTGRES_CONN_STR"`
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH" envDefault:"./firebase_credentials.json"`
	StorageBucket           string `env:"STORAGE_BUCKET"`
	SessionTTLHours         int    `env:"SESSION_TTL_HOURS" envDefault:"168"`
}

// Load reads the .env file when present and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, assuming environment variables are set.")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
