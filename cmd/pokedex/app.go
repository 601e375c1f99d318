package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sternrassler/pokedex-client/internal/config"
	"github.com/Sternrassler/pokedex-client/pkg/cache"
	"github.com/Sternrassler/pokedex-client/pkg/catalog"
	"github.com/Sternrassler/pokedex-client/pkg/client"
	"github.com/Sternrassler/pokedex-client/pkg/logging"
	"github.com/Sternrassler/pokedex-client/pkg/metrics"
	"github.com/Sternrassler/pokedex-client/pkg/search"
)

// app carries what every subcommand shares: resolved configuration, the
// PokeAPI client and the optional Redis connection.
type app struct {
	flags struct {
		envFile   string
		baseURL   string
		userAgent string
		timeout   time.Duration
		logLevel  string
		redisAddr string
		metrics   bool
	}

	cfg    *config.Config
	client *client.Client
	redis  *redis.Client
	logger zerolog.Logger
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.flags.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL = a.flags.baseURL
	}
	if flags.Changed("user-agent") {
		cfg.UserAgent = a.flags.userAgent
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.flags.timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = a.flags.redisAddr
	}
	a.cfg = cfg

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: cmd.ErrOrStderr(),
	})
	a.logger = logging.NewLogger(logging.ComponentCLI)

	clientCfg := cfg.ClientConfig()
	if cfg.RedisAddr != "" {
		a.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		manager := cache.NewManager(a.redis)
		if err := manager.Ping(ctx); err != nil {
			_ = a.redis.Close()
			a.redis = nil
			return fmt.Errorf("connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		clientCfg.Cache = manager
		a.logger.Debug().Str("addr", cfg.RedisAddr).Msg("Response cache enabled")
	}

	c, err := client.New(clientCfg)
	if err != nil {
		return err
	}
	a.client = c
	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.flags.metrics {
		if err := metrics.Dump(cmd.ErrOrStderr(), "pokeapi_", "pokedex_"); err != nil {
			return err
		}
	}
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

// index builds the species name index used by search and random.
func (a *app) index(ctx context.Context) (*search.Index, error) {
	return search.Build(ctx, a.client, catalog.DefaultAllowList())
}

// showSelector navigates to the profile view of the chosen name.
func (a *app) showSelector(ctx context.Context, w io.Writer) search.Selector {
	return search.Selector{
		Navigate: func(name string) error {
			return a.show(ctx, w, name)
		},
	}
}
