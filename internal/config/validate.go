package config

import (
	"errors"
	"fmt"

	appenv "github.com/garrettladley/habitreset/internal/env"
	"github.com/garrettladley/habitreset/internal/storage"
	"github.com/garrettladley/habitreset/internal/xslog"
)

// normalize returns c with the enum fields in canonical form, or every
// validation error joined.
func (c Config) normalize() (Config, error) {
	var errs []error

	if e, err := appenv.Parse(string(c.Env)); err != nil {
		errs = append(errs, err)
	} else {
		c.Env = e
	}
	if k, err := storage.ParseKind(string(c.Storage)); err != nil {
		errs = append(errs, err)
	} else {
		c.Storage = k
	}
	if l, err := xslog.Parse(string(c.Log.Level)); err != nil {
		errs = append(errs, err)
	} else {
		c.Log.Level = l
	}

	switch c.Storage {
	case storage.KindRedis:
		if c.Redis.URL == "" {
			errs = append(errs, fmt.Errorf("REDIS_URL is required for the %s backend", c.Storage))
		}
	case storage.KindPostgres:
		if c.Database.URL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for the %s backend", c.Storage))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return c, err
	}
	return c, nil
}

// WithStorage returns a copy of c using kind, revalidated.
func (c Config) WithStorage(kind string) (Config, error) {
	c.Storage = storage.Kind(kind)
	return c.normalize()
}
