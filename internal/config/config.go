package config

import (
	"github.com/caarlos0/env/v11"

	appenv "github.com/garrettladley/habitreset/internal/env"
	"github.com/garrettladley/habitreset/internal/storage"
	"github.com/garrettladley/habitreset/internal/xslog"
)

type Config struct {
	Env     appenv.Environment `env:"HABITRESET_ENV" envDefault:"development"`
	Storage storage.Kind       `env:"HABITRESET_STORAGE" envDefault:"file"`
	DataDir string             `env:"HABITRESET_DATA_DIR"`

	Redis    Redis
	Database Database
	Log      Log
}

type Redis struct {
	URL string `env:"REDIS_URL"`
}

type Database struct {
	URL string `env:"DATABASE_URL"`
}

type Log struct {
	Level  xslog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Stderr bool        `env:"HABITRESET_LOG_STDERR" envDefault:"false"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	return cfg.normalize()
}
