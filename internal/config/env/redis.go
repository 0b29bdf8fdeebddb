package envconfig

import (
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

type redisEnv struct {
	Host        string        `env:"REDIS_HOST" envDefault:"localhost"`
	Port        int           `env:"REDIS_PORT" envDefault:"6379"`
	Password    string        `env:"REDIS_PASSWORD"`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	SettingsTTL time.Duration `env:"REDIS_SETTINGS_TTL" envDefault:"0s"`
}

type redis struct {
	raw redisEnv
}

func NewRedisConfig() (*redis, error) {
	var raw redisEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &redis{raw: raw}, nil
}

func (cfg *redis) Address() string {
	return net.JoinHostPort(cfg.raw.Host, strconv.Itoa(cfg.raw.Port))
}

func (cfg *redis) Password() string           { return cfg.raw.Password }
func (cfg *redis) DB() int                    { return cfg.raw.DB }
func (cfg *redis) SettingsTTL() time.Duration { return cfg.raw.SettingsTTL }
