package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"checkpoint-bot/internal/command"
	"checkpoint-bot/internal/discord"
	"checkpoint-bot/internal/logger"
	"checkpoint-bot/internal/server"
)

type Config struct {
	Logger  logger.Config
	HTTP    server.Config
	Discord discord.Config
	Review  command.Config
}

// New reads configuration from the env file at path. Without a path, a .env
// file in the working directory is loaded if present and the process
// environment is used.
func New(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		err := cleanenv.ReadConfig(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}

		err = cleanenv.ReadEnv(&cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}
	}

	cfg.normalize()

	err := cfg.validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// normalize trims role ids so "10, 11" reads as two ids.
func (c *Config) normalize() {
	allowed := make([]string, 0, len(c.Review.AllowedRoles))
	for _, id := range c.Review.AllowedRoles {
		id = strings.TrimSpace(id)
		if id != "" {
			allowed = append(allowed, id)
		}
	}
	c.Review.AllowedRoles = allowed

	roles := &c.Review.Roles
	for _, id := range []*string{
		&roles.Member,
		&roles.AgeVerified,
		&roles.PendingReview,
		&roles.CharacterApproved,
		&roles.BioPending,
	} {
		*id = strings.TrimSpace(*id)
	}
}

func (c *Config) validate() error {
	if len(c.Review.AllowedRoles) == 0 {
		return errors.New("REVIEW_ALLOWED_ROLES must list at least one role")
	}

	if c.Review.FirstLineWidth <= 0 || c.Review.LineWidth <= 0 {
		return fmt.Errorf("comment widths must be positive: first=%d line=%d",
			c.Review.FirstLineWidth, c.Review.LineWidth)
	}

	return nil
}
