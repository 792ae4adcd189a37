package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Env holds process level settings read from the environment
type Env struct {
	LogLevel    string `env:"LOADSTATUS_LOG_LEVEL,default=INFO"`
	DownloadDir string `env:"LOADSTATUS_DOWNLOAD_DIR"`
	StorePath   string `env:"LOADSTATUS_STORE_PATH"`
	MaxParallel int    `env:"LOADSTATUS_MAX_PARALLEL"`
}

// LoadEnv reads the given .env files, when present, and then the environment.
// Variables already set in the environment win over the files.
func LoadEnv(files ...string) (Env, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("failed to load .env: %w", err)
	}
	var e Env
	if _, err := env.UnmarshalFromEnviron(&e); err != nil {
		return Env{}, fmt.Errorf("config error: %w", err)
	}
	return e, nil
}
