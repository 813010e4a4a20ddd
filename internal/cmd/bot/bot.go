// Package bot parses bot command configuration and plays one demonstration
// game.
package bot

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/louisbranch/swoq/internal/api/swoqv1"
	"github.com/louisbranch/swoq/internal/game"
	entrypoint "github.com/louisbranch/swoq/internal/platform/cmd"
	"github.com/louisbranch/swoq/internal/platform/config"
)

// Config holds bot command configuration.
type Config struct {
	Host               string               `env:"SWOQ_HOST"                  envDefault:"localhost:5009"`
	UserID             string               `env:"SWOQ_USER_ID"`
	UserName           string               `env:"SWOQ_USER_NAME"`
	ReplaysFolder      string               `env:"SWOQ_REPLAYS_FOLDER"`
	Level              config.OptionalInt32 `env:"SWOQ_LEVEL"`
	Seed               config.OptionalInt32 `env:"SWOQ_SEED"`
	QueueRetryInterval time.Duration        `env:"SWOQ_QUEUE_RETRY_INTERVAL"`
	QueueMaxAttempts   uint                 `env:"SWOQ_QUEUE_MAX_ATTEMPTS"`
	WaitForHealth      bool                 `env:"SWOQ_WAIT_FOR_HEALTH"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Host, "host", cfg.Host, "game server address")
	fs.StringVar(&cfg.UserID, "user-id", cfg.UserID, "user id")
	fs.StringVar(&cfg.UserName, "user-name", cfg.UserName, "user name used in recording file names")
	fs.StringVar(&cfg.ReplaysFolder, "replays", cfg.ReplaysFolder, "folder for recordings (empty disables recording)")
	fs.Var(&cfg.Level, "level", "level to start (server default when unset)")
	fs.Var(&cfg.Seed, "seed", "map seed (random when unset)")
	fs.DurationVar(&cfg.QueueRetryInterval, "queue-retry-interval", cfg.QueueRetryInterval, "pause between start attempts while queued")
	fs.UintVar(&cfg.QueueMaxAttempts, "queue-max-attempts", cfg.QueueMaxAttempts, "start attempts before giving up (0 waits until interrupted)")
	fs.BoolVar(&cfg.WaitForHealth, "wait-for-health", cfg.WaitForHealth, "wait for the server health check before starting")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// StartOptions converts the configuration into game start options.
func (c Config) StartOptions() game.StartOptions {
	return game.StartOptions{
		Level:              c.Level.Ptr(),
		Seed:               c.Seed.Ptr(),
		QueueRetryInterval: c.QueueRetryInterval,
		MaxAttempts:        c.QueueMaxAttempts,
	}
}

// Run connects to the game server and plays one game.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBot, func(ctx context.Context) error {
		conn, err := game.Dial(ctx, game.Config{
			Identity: game.Identity{
				UserID:     cfg.UserID,
				UserName:   cfg.UserName,
				ReplaysDir: cfg.ReplaysFolder,
			},
			Host:          cfg.Host,
			WaitForHealth: cfg.WaitForHealth,
		})
		if err != nil {
			return err
		}
		defer conn.Close()
		return Play(ctx, conn, cfg.StartOptions(), log.Printf)
	})
}

// Play starts a game and alternates east and south moves while it is active.
// Any failed action ends the game.
func Play(ctx context.Context, conn *game.Connection, opts game.StartOptions, logf func(string, ...any)) (err error) {
	g, err := conn.Start(ctx, opts)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	defer func() {
		err = errors.Join(err, g.Close())
	}()

	logf("game %s started", g.ID())
	if seed, ok := g.Seed(); ok {
		logf("- seed: %d", seed)
	}
	logf("- map size: %dx%d", g.MapHeight(), g.MapWidth())

	moveEast := true
	for g.State().GetStatus() == swoqv1.GameStatusActive {
		action := swoqv1.DirectedActionMoveSouth
		if moveEast {
			action = swoqv1.DirectedActionMoveEast
		}
		logf("tick: %d, action: %s", g.State().GetTick(), action)
		if err := g.Act(ctx, action); err != nil {
			return fmt.Errorf("act at tick %d: %w", g.State().GetTick(), err)
		}
		moveEast = !moveEast
	}
	logf("game %s ended: %s", g.ID(), g.State().GetStatus())
	return nil
}
