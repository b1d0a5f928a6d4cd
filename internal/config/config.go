package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tresenraya-backend/internal/entity"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"8080"`
	Storage    string  `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis      Redis   `yaml:"redis"`
	Players    Players `yaml:"players"`
}

type Redis struct {
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	MatchTTL time.Duration `yaml:"match-ttl" env:"REDIS_MATCH_TTL" env-default:"24h"`
}

type Players struct {
	X Identity `yaml:"x"`
	O Identity `yaml:"o"`
}

// Identity overrides the display identity of one side. Empty fields keep the defaults.
type Identity struct {
	Name           string `yaml:"name"`
	Icon           string `yaml:"icon"`
	Color          string `yaml:"color"`
	VictoryMessage string `yaml:"victory-message"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Roster builds the player identities, starting from the defaults.
func (that *Players) Roster() entity.Roster {
	roster := entity.DefaultRoster()

	that.X.apply(&roster.X)
	that.O.apply(&roster.O)

	return roster
}

func (that Identity) apply(player *entity.Player) {
	if that.Name != "" {
		player.Name = that.Name
	}
	if that.Icon != "" {
		player.Icon = that.Icon
	}
	if that.Color != "" {
		player.Color = that.Color
	}
	if that.VictoryMessage != "" {
		player.VictoryMessage = that.VictoryMessage
	}
}
