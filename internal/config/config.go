package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// TimeZone is the location used as the host local clock for parsing dates
// without a zone designator and for building slot timestamps.
var TimeZone = time.Local

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE"`
		LogLevel string      `env:"LOG_LEVEL" envDefault:"info"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Availability struct {
		URL      string        `env:"AVAILABILITY_URL"`
		Username string        `env:"AVAILABILITY_USERNAME"`
		Password string        `env:"AVAILABILITY_PASSWORD"`
		Timeout  time.Duration `env:"AVAILABILITY_TIMEOUT" envDefault:"10s"`
	}

	Appointment struct {
		MaxMonthsForAnAppointment int  `env:"APPOINTMENT_MAX_MONTHS" envDefault:"8"`
		FutureSlotsOnly           bool `env:"SLOTS_FUTURE_ONLY" envDefault:"true"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMQ struct {
		Enabled   bool   `env:"RABBITMQ_ENABLED"`
		URL       string `env:"RABBITMQ_URL"`
		Exchange  string `env:"RABBITMQ_EXCHANGE" envDefault:"slot-appointment"`
		Queue     string `env:"RABBITMQ_QUEUE" envDefault:"slot-appointment-svc.schedule"`
		QueueBind string `env:"RABBITMQ_QUEUE_BIND" envDefault:"*.slot-appointment-svc.schedule.*.*"`
	}

	Cache struct {
		Enabled bool          `env:"CACHE_ENABLED"`
		Size    int           `env:"CACHE_SIZE" envDefault:"256"`
		TTL     time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	if cfg.App.Timezone != "" {
		loc, err := time.LoadLocation(cfg.App.Timezone)
		if err != nil {
			return nil, err
		}
		TimeZone = loc
	}

	cfg.Auth.BasicClients = ParseBasicClients(cfg.Auth.BasicClientsString)

	// Без RabbitMQ некому сбрасывать кэш, поэтому держим его выключенным
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

// ParseBasicClients разбирает строку вида "user1:pass1,user2:pass2".
func ParseBasicClients(s string) []ConfigBasicClient {
	clients := []ConfigBasicClient{}
	if s == "" {
		return clients
	}

	for _, pair := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) == 2 && parts[0] != "" {
			clients = append(clients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	return clients
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
