package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"checkpoint-bot/internal/command"
	"checkpoint-bot/internal/config"
	"checkpoint-bot/internal/discord"
	"checkpoint-bot/internal/logger"
	"checkpoint-bot/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.New(fetchConfigPath())
	if err != nil {
		stdlog.Fatalf("cannot initialize config: %v", err)
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		stdlog.Fatalf("cannot initialize logger: %v", err)
	}
	defer log.Sync()

	bot, err := discord.New(&cfg.Discord, log)
	if err != nil {
		log.Fatal("cannot initialize discord client", zap.Error(err))
	}

	dispatcher := command.NewDispatcher(&cfg.Review, bot, log)
	removeHandler := bot.HandleInteractions(ctx, dispatcher)
	defer removeHandler()

	err = bot.Open()
	if err != nil {
		log.Fatal("cannot open discord session", zap.Error(err))
	}

	if cfg.Discord.SyncCommands {
		err = bot.RegisterCommands(ctx, dispatcher.Commands())
		if err != nil {
			log.Error("failed to sync commands", zap.Error(err))
		}
	}

	router := server.NewRouter(log, &cfg.Logger, cfg.HTTP.Timeout)
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := http.Server{
		Addr:    addr,
		Handler: router,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("received shutdown signal")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer shutdownCancel()

		err := bot.Close()
		if err != nil {
			log.Error("failed to close discord session", zap.Error(err))
		}

		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	if err != nil {
		log.Error("application stopped with error", zap.Error(err))
		return
	}

	log.Info("application shutdown completed successfully")
}

func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config_path", "", "Path to the config file")
	flag.Parse()

	return path
}
