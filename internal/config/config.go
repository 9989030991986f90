package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"cricket-app/internal/logging"

	"github.com/cockroachdb/errors"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv          string
	HTTPAddr        string
	DBDriver        string
	DBPath          string
	PostgresDSN     string
	StrictPayloads  bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	httpAddr := strings.TrimSpace(getEnv("HTTP_ADDR", ":3002"))
	if httpAddr == "" {
		return Config{}, errors.New("HTTP_ADDR must not be empty")
	}

	postgresDSN := strings.TrimSpace(getEnv("POSTGRES_DSN", ""))
	driverDefault := DriverSQLite
	if postgresDSN != "" {
		driverDefault = DriverPostgres
	}
	dbDriver, err := parseDriver(getEnv("DB_DRIVER", driverDefault))
	if err != nil {
		return Config{}, err
	}
	if dbDriver == DriverPostgres && postgresDSN == "" {
		return Config{}, errors.New("POSTGRES_DSN is required when DB_DRIVER=postgres")
	}

	dbPath := strings.TrimSpace(getEnv("DB_PATH", "cricket.db"))
	if dbDriver == DriverSQLite && dbPath == "" {
		return Config{}, errors.New("DB_PATH must not be empty when DB_DRIVER=sqlite")
	}

	strictPayloads, err := strconv.ParseBool(getEnv("STRICT_PAYLOADS", "false"))
	if err != nil {
		return Config{}, errors.Wrap(err, "parse STRICT_PAYLOADS")
	}

	readTimeout, err := getEnvAsDuration("READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsDuration("WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	logLevelDefault := "debug"
	if appEnv == EnvProd {
		logLevelDefault = "info"
	}

	return Config{
		AppEnv:          appEnv,
		HTTPAddr:        httpAddr,
		DBDriver:        dbDriver,
		DBPath:          dbPath,
		PostgresDSN:     postgresDSN,
		StrictPayloads:  strictPayloads,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		LogLevel:        logging.ParseLevel(getEnv("LOG_LEVEL", logLevelDefault)),
	}, nil
}

func parseAppEnv(value string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case EnvDev, EnvProd:
		return v, nil
	default:
		return "", errors.Newf("invalid APP_ENV %q: expected %s or %s", value, EnvDev, EnvProd)
	}
}

func parseDriver(value string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case DriverSQLite, DriverPostgres, DriverMemory:
		return v, nil
	default:
		return "", errors.Newf("invalid DB_DRIVER %q: expected %s, %s or %s", value, DriverSQLite, DriverPostgres, DriverMemory)
	}
}

func getEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func getEnvAsDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	if d <= 0 {
		return 0, errors.Newf("%s must be > 0", key)
	}
	return d, nil
}
