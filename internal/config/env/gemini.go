package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type geminiEnv struct {
	APIKey      string        `env:"GEMINI_API_KEY"`
	FastModel   string        `env:"GEMINI_FAST_MODEL" envDefault:"gemini-2.5-flash"`
	ChatModel   string        `env:"GEMINI_CHAT_MODEL" envDefault:"gemini-2.5-pro"`
	Temperature float32       `env:"GEMINI_TEMPERATURE" envDefault:"0.2"`
	Timeout     time.Duration `env:"GEMINI_TIMEOUT" envDefault:"20s"`
	ChatTimeout time.Duration `env:"GEMINI_CHAT_TIMEOUT" envDefault:"45s"`
}

type gemini struct {
	raw geminiEnv
}

func NewGeminiConfig() (*gemini, error) {
	var raw geminiEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &gemini{raw: raw}, nil
}

func (cfg *gemini) APIKey() string             { return cfg.raw.APIKey }
func (cfg *gemini) FastModel() string          { return cfg.raw.FastModel }
func (cfg *gemini) ChatModel() string          { return cfg.raw.ChatModel }
func (cfg *gemini) Temperature() float32       { return cfg.raw.Temperature }
func (cfg *gemini) Timeout() time.Duration     { return cfg.raw.Timeout }
func (cfg *gemini) ChatTimeout() time.Duration { return cfg.raw.ChatTimeout }
