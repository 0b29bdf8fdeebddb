package envconfig

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MadScie254/Bordaless-SKU-Lab/internal/model"
)

type catalogEnv struct {
	Storage   string `env:"CATALOG_STORAGE" envDefault:"memory"`
	Bootstrap bool   `env:"CATALOG_BOOTSTRAP" envDefault:"true"`

	// Used while the catalog is empty.
	FallbackMaxPrice float64 `env:"CATALOG_FALLBACK_MAX_PRICE" envDefault:"500"`
	FallbackMaxMOQ   int64   `env:"CATALOG_FALLBACK_MAX_MOQ" envDefault:"1000"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	if raw.Storage != "memory" && raw.Storage != "mongo" {
		return nil, fmt.Errorf("unsupported CATALOG_STORAGE %q", raw.Storage)
	}
	if raw.FallbackMaxPrice < 0 || raw.FallbackMaxMOQ < 0 {
		return nil, errors.New("catalog fallback bounds must be non-negative")
	}
	return &catalog{raw: raw}, nil
}

func (cfg *catalog) Storage() string { return cfg.raw.Storage }
func (cfg *catalog) Bootstrap() bool { return cfg.raw.Bootstrap }

func (cfg *catalog) FallbackBounds() model.Bounds {
	return model.Bounds{MaxPrice: cfg.raw.FallbackMaxPrice, MaxMOQ: cfg.raw.FallbackMaxMOQ}
}

type sessionEnv struct {
	TTL              time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	JanitorInterval  time.Duration `env:"SESSION_JANITOR_INTERVAL" envDefault:"1m"`
	InterpretTimeout time.Duration `env:"SEARCH_INTERPRET_TIMEOUT" envDefault:"8s"`
}

type session struct {
	raw sessionEnv
}

func NewSessionConfig() (*session, error) {
	var raw sessionEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &session{raw: raw}, nil
}

func (cfg *session) TTL() time.Duration              { return cfg.raw.TTL }
func (cfg *session) JanitorInterval() time.Duration  { return cfg.raw.JanitorInterval }
func (cfg *session) InterpretTimeout() time.Duration { return cfg.raw.InterpretTimeout }

type wizardEnv struct {
	DefaultCountry string `env:"WIZARD_DEFAULT_COUNTRY" envDefault:"Kenya"`
	MaxImageBytes  int64  `env:"WIZARD_MAX_IMAGE_BYTES" envDefault:"5242880"`
}

type wizard struct {
	raw wizardEnv
}

func NewWizardConfig() (*wizard, error) {
	var raw wizardEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &wizard{raw: raw}, nil
}

func (cfg *wizard) DefaultCountry() string { return cfg.raw.DefaultCountry }
func (cfg *wizard) MaxImageBytes() int64   { return cfg.raw.MaxImageBytes }

type settingsEnv struct {
	Storage string `env:"SETTINGS_STORAGE" envDefault:"memory"`
}

type settings struct {
	raw settingsEnv
}

func NewSettingsConfig() (*settings, error) {
	var raw settingsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	switch raw.Storage {
	case "memory", "redis", "postgres":
	default:
		return nil, fmt.Errorf("unsupported SETTINGS_STORAGE %q", raw.Storage)
	}
	return &settings{raw: raw}, nil
}

func (cfg *settings) Storage() string { return cfg.raw.Storage }
