package config

import "os"

type Config struct {
	DBDriver      string
	DatabaseURL   string
	Port          string
	AllowedOrigin string
}

// Load reads configuration from the environment, falling back to the
// defaults the frontend dev setup expects.
func Load() Config {
	return Config{
		DBDriver:      getenv("DB_DRIVER", "sqlite"),
		DatabaseURL:   getenv("DATABASE_URL", "database.db"),
		Port:          getenv("PORT", "8000"),
		AllowedOrigin: getenv("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
