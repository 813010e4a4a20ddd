// Package cmd holds the startup steps shared by the bot and replay commands.
//
// Both read SWOQ_* environment variables first and let flags override them,
// then run inside a tracer provider named swoq-bot or swoq-replay that is
// flushed when the command returns.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/swoq/internal/platform/config"
	"github.com/louisbranch/swoq/internal/platform/otel"
	"github.com/louisbranch/swoq/internal/platform/timeouts"
)

// Command names. They name the tracer provider and prefix shutdown logs.
const (
	ServiceBot    = "bot"
	ServiceReplay = "replay"
)

// RunOptions tunes how a command run is wrapped.
type RunOptions struct {
	// ShutdownTimeout bounds telemetry shutdown. Defaults to timeouts.Shutdown.
	ShutdownTimeout time.Duration
}

// ParseConfig fills cfg from SWOQ_* environment variables.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses the command flags. A command registers its flags with the
// env values as defaults, so a flag given on the command line wins.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs runs ParseConfig and then ParseArgs.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// RunWithTelemetry runs a bot or replay command with tracing set up for it.
// Spans are exported only when SWOQ_OTEL_ENDPOINT is set.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions is RunWithTelemetry with a custom shutdown bound.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := otel.Setup(ctx, "swoq-"+service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = timeouts.Shutdown
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("%s otel shutdown: %v", service, err)
		}
	}()
	return run(ctx)
}
