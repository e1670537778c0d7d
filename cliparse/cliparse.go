package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/danielhkuo/pulsecheck/models"
)

// Database types
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// DefaultSQLitePath is used when the sqlite backend has no DATABASE_URL
const DefaultSQLitePath = "pulsecheck.db"

type Config struct {
	Port         int    `env:"PORT" envDefault:"5000"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DatabaseType string `env:"DATABASE_TYPE" envDefault:"postgres"`

	// Connection parts, used when DatabaseURL is empty
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     int    `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"surveyDB"`
	DBSSL      bool   `env:"DB_SSL" envDefault:"false"`

	AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3001"`

	// label:key pairs, e.g. "pizza:pizzaLoversPercentage"
	TrackedFoodSpecs []string `env:"TRACKED_FOODS" envSeparator:"," envDefault:"pizza:pizzaLoversPercentage,pasta:pastaLoversPercentage,pap and wors:papAndWorsLoversPercentage"`

	// Parsed from TrackedFoodSpecs by ParseFlags
	TrackedFoods []models.TrackedFood

	Debug bool `env:"DEBUG"`
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("pulsecheck", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (postgres) or file path (sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (postgres or sqlite)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log at debug level")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d", cfg.Port)
	}

	cfg.DatabaseType = strings.ToLower(strings.TrimSpace(cfg.DatabaseType))
	switch cfg.DatabaseType {
	case DatabasePostgres:
	case DatabaseSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLitePath
		}
	default:
		return Config{}, fmt.Errorf("unsupported database type %q (use postgres or sqlite)", cfg.DatabaseType)
	}

	foods, err := ParseTrackedFoods(cfg.TrackedFoodSpecs)
	if err != nil {
		return Config{}, err
	}
	cfg.TrackedFoods = foods

	return cfg, nil
}

// ParseTrackedFoods parses "label:key" entries
func ParseTrackedFoods(specs []string) ([]models.TrackedFood, error) {
	foods := make([]models.TrackedFood, 0, len(specs))
	seen := make(map[string]bool, len(specs))

	for _, entry := range specs {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		label, key, ok := strings.Cut(entry, ":")
		label = strings.TrimSpace(label)
		key = strings.TrimSpace(key)
		if !ok || label == "" || key == "" {
			return nil, fmt.Errorf("invalid tracked food %q (want label:key)", entry)
		}
		if models.IsReservedAnalyticsKey(key) {
			return nil, fmt.Errorf("tracked food key %q is reserved", key)
		}
		if seen[key] {
			return nil, fmt.Errorf("duplicate tracked food key %q", key)
		}
		seen[key] = true
		foods = append(foods, models.TrackedFood{Label: label, Key: key})
	}

	if len(foods) == 0 {
		return nil, errors.New("at least one tracked food is required")
	}
	return foods, nil
}

// DSN returns the connection string for the configured database
func (c Config) DSN() string {
	if c.DatabaseURL != "" || c.DatabaseType == DatabaseSQLite {
		return c.DatabaseURL
	}

	sslMode := "disable"
	if c.DBSSL {
		sslMode = "require"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

// Addr is the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
