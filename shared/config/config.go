// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/adibayu/corpsite/shared/supabase"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config is everything the server needs to start.
type Config struct {
	Addr     string
	Supabase supabase.Config
}

// Load reads the environment, preferring values already set over .env
// contents. Absent supabase settings are not an error; they close the
// configuration gate and put the site in mock mode.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using process environment")
	}

	return Config{
		Addr: getenv("ADDR", ":8080"),
		Supabase: supabase.Config{
			URL:     os.Getenv("SUPABASE_URL"),
			AnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
