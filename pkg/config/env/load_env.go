package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file. ENV_PATH
// overrides the default location. A missing file is not fatal: credentials
// can come from the process environment instead.
func LoadDotEnv(defaultPath string) {
	envPath := defaultPath
	if os.Getenv("ENV_PATH") != "" {
		envPath = os.Getenv("ENV_PATH")
	}

	if err := godotenv.Load(envPath); err != nil {
		slog.Debug("Skipping .env file", "path", envPath, "error", err)
	}
}
