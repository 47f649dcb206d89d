package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP         HTTP
	Logger       Logger
	Postgres     Postgres
	Auth         Auth
	Kafka        Kafka
	ExchangeRate ExchangeRate
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8080"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Auth struct {
	// PrivateKey is a base64-encoded PEM RSA private key for RS256 access
	// token signing. PublicKey is its base64-encoded PEM counterpart used
	// for verification.
	PrivateKey string        `env:"AUTH_PRIVATE_KEY"`
	PublicKey  string        `env:"AUTH_PUBLIC_KEY"`
	AccessTTL  time.Duration `env:"AUTH_ACCESS_TTL" envDefault:"15m"`
	RefreshTTL time.Duration `env:"AUTH_REFRESH_TTL" envDefault:"72h"`
}

type Kafka struct {
	Brokers              []string `env:"KAFKA_BROKERS"`
	AgreementSignedTopic string   `env:"KAFKA_AGREEMENT_SIGNED_TOPIC" envDefault:"agreements.signed"`
}

type ExchangeRate struct {
	BaseURL  string        `env:"EXCHANGE_RATE_BASE_URL" envDefault:"https://v6.exchangerate-api.com"`
	APIKey   string        `env:"EXCHANGE_RATE_API_KEY"`
	Timeout  time.Duration `env:"EXCHANGE_RATE_TIMEOUT" envDefault:"10s"`
	RetryMax int           `env:"EXCHANGE_RATE_RETRY_MAX" envDefault:"2"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
