package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads the .env file and checks that every required setting is present.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET", "APP_PORT"} {
		if os.Getenv(key) == "" {
			Logger.Fatal("required environment variable is not set: " + key)
		}
	}
}
