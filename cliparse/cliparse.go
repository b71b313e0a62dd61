package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/danielhkuo/retro-studio/models"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	VotePolicy   string
}

// ParseFlags validates flags and fills in defaults.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("retro-studio", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Behavior
	fs.StringVar(&cfg.VotePolicy, "vote-policy", "", "Repeat-vote policy (allow-multiple or dedupe-per-user)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3319 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "retro_studio.db" // single-file sqlite deployment
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}

	if cfg.VotePolicy == "" {
		cfg.VotePolicy = os.Getenv("VOTE_POLICY")
		if cfg.VotePolicy == "" {
			cfg.VotePolicy = models.PolicyAllowMultiple
		}
	}
	if cfg.VotePolicy != models.PolicyAllowMultiple && cfg.VotePolicy != models.PolicyDedupePerUser {
		return Config{}, fmt.Errorf("invalid vote policy %q", cfg.VotePolicy)
	}

	return cfg, nil
}
