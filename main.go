package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"blight/internal/binding"
	"blight/internal/bot"
	"blight/internal/build"
	"blight/internal/config"
	"blight/internal/lists"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(fmt.Sprintf("Could not load configuration: %v", err))
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Msg(fmt.Sprintf("Unknown log level %s, using info", cfg.LogLevel))
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Bindings of DM channels are only durable with redis
	var bindings lists.Bindings
	if cfg.RedisURL != "" {
		store, err := binding.NewRedisStore(cfg.RedisURL)
		if err != nil {
			log.Fatal().Msg(fmt.Sprintf("Could not connect to redis: %v", err))
		}
		defer store.Close()
		bindings = store
		log.Info().Msg("Keeping DM lists in redis")
	} else {
		bindings = binding.NewMemoryStore()
		log.Info().Msg("Keeping DM lists in memory, they will be forgotten on restart")
	}

	blight, err := bot.CreateBot(cfg, bindings, build.NewRoller(nil))
	if err != nil {
		log.Fatal().Msg(fmt.Sprintf("Could not create discord bot: %v", err))
	}

	// Keep the bot running until an interruption (ctrl + C)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := blight.Run(ctx); err != nil {
		log.Error().Msg(fmt.Sprintf("Bot stopped: %v", err))
		os.Exit(1)
	}
}
