package config // package config loads application configuration from environment variables

import (
    "os"
    "strconv"

    "github.com/joho/godotenv"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/bmi-calculator/internal/bmi"
)

// Config holds the runtime settings of the HTTP server and the CLI.  Each
// field corresponds to an environment variable; every variable has a
// default so a bare `go run ./cmd/server` works.
type Config struct {
    Env        string         // application environment (e.g. "dev", "prod")
    Port       string         // HTTP port to listen on
    LogLevel   string         // zerolog level name (debug, info, warn, error)
    Thresholds bmi.Thresholds // classification table selected by BMI_THRESHOLDS
}

// Load reads an optional .env file and then the process environment.  An
// unknown BMI_THRESHOLDS value is a configuration error and stops the
// program.
func Load() Config {
    LoadDotEnv()
    th, err := bmi.ParseThresholds(os.Getenv("BMI_THRESHOLDS"))
    if err != nil {
        log.Fatal().Err(err).Msg("invalid BMI_THRESHOLDS")
    }
    return Config{
        Env:        envStr("APP_ENV", "dev"),
        Port:       envStr("APP_PORT", "8080"),
        LogLevel:   envStr("LOG_LEVEL", "info"),
        Thresholds: th,
    }
}

// LoadDotEnv loads .env (or the file named by ENV_FILE) into the process
// environment.  Variables already set win; a missing file is not an error.
func LoadDotEnv() {
    path := envStr("ENV_FILE", ".env")
    if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
        log.Warn().Err(err).Str("path", path).Msg("could not read env file")
    }
}

// IsProd reports whether the service runs in production mode.
func (c Config) IsProd() bool {
    return c.Env == "prod" || c.Env == "production"
}

// mustInt converts the value of key into an integer, falling back to def
// when the variable is unset.  A malformed value stops the program.
func mustInt(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatal().Str("key", key).Str("value", s).Msg("invalid int")
    }
    return n
}
