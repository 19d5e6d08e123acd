package cmd

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

//go:embed config.yaml
var baseConfig []byte

// EnvPrefix prefixes environment overrides, e.g. PIZZERIA_DATABASE_HOST.
const EnvPrefix = "PIZZERIA"

type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	HTTP      HTTPConfig      `mapstructure:"http" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Kitchen   KitchenConfig   `mapstructure:"kitchen"`
}

type AppConfig struct {
	Name    string `mapstructure:"name" validate:"required"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
}

type HTTPConfig struct {
	Host            string        `mapstructure:"host" validate:"required,ip"`
	Port            int           `mapstructure:"port" validate:"required,min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdowntimeout" validate:"required"`
	Pprof           bool          `mapstructure:"pprof"`
	Swagger         bool          `mapstructure:"swagger"`
}

// Address returns the listen address of the HTTP server.
func (c HTTPConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host           string `mapstructure:"host" validate:"required"`
	Port           int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	User           string `mapstructure:"user" validate:"required"`
	Password       string `mapstructure:"password"`
	Name           string `mapstructure:"name" validate:"required"`
	SSLMode        string `mapstructure:"sslmode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	MaxOpenConns   int    `mapstructure:"maxopenconns" validate:"min=1"`
	MigrateOnStart bool   `mapstructure:"migrateonstart"`
}

// DSN returns the connection string understood by both lib/pq and pgx.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
	File   string `mapstructure:"file"`
}

type TelemetryConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Endpoint     string        `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	SampleRate   float64       `mapstructure:"samplerate" validate:"min=0,max=1"`
	BatchTimeout time.Duration `mapstructure:"batchtimeout"`
}

type KitchenConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule" validate:"required_if=Enabled true"`
	Status   string `mapstructure:"status" validate:"max=64,ne=pending"`
}

// LoadConfig reads the embedded defaults, then applies overrides from the
// environment. A .env file in the working directory is loaded first when present.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(baseConfig)); err != nil {
		return Config{}, fmt.Errorf("read base config: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
