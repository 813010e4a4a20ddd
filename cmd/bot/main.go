// Package main plays a demonstration SWOQ game.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	botcmd "github.com/louisbranch/swoq/internal/cmd/bot"
	"github.com/louisbranch/swoq/internal/platform/config"
)

func main() {
	log.SetPrefix("[BOT] ")
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("load .env: %v", err)
	}
	cfg, err := botcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := botcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("play: %v", err)
	}
}
