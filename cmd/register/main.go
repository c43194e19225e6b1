package main

import (
	"context"
	"flag"
	stdlog "log"

	"go.uber.org/zap"

	"checkpoint-bot/internal/command"
	"checkpoint-bot/internal/config"
	"checkpoint-bot/internal/discord"
	"checkpoint-bot/internal/logger"
)

func main() {
	var configPath string

	flag.StringVar(&configPath, "config_path", "", "Path to the config file")
	flag.Parse()

	cfg, err := config.New(configPath)
	if err != nil {
		stdlog.Fatal(err)
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		stdlog.Fatal(err)
	}

	bot, err := discord.New(&cfg.Discord, log)
	if err != nil {
		log.Fatal("failed to create discord client", zap.Error(err))
	}

	descriptors := command.Descriptors(cfg.Review.Roles)

	err = bot.RegisterCommands(context.Background(), descriptors)
	if err != nil {
		log.Fatal("failed to register commands", zap.Error(err))
	}

	log.Info("successfully registered commands", zap.Int("count", len(descriptors)))
}
