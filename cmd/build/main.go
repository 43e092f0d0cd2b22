package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/config"
	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/mirea"
	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/notify"
	"github.com/danilapolakov92-cpu/danilapolakov92-cpu.github.io/internal/site"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

const (
	exitFailure       = 1
	exitGroupNotFound = 2
	exitFetchFailed   = 3
)

func exitCode(err error) int {
	var fetchErr *mirea.FetchError

	switch {
	case errors.Is(err, mirea.ErrGroupNotFound):
		return exitGroupNotFound
	case errors.As(err, &fetchErr):
		return exitFetchFailed
	default:
		return exitFailure
	}
}

func build(logger *slog.Logger) error {
	godotenv.Load()

	fs := afero.NewOsFs()

	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		return err
	}

	builder := &site.Builder{
		Fs:           fs,
		Fetcher:      mirea.NewClient(cfg.APIURL, nil, logger),
		Logger:       logger,
		Group:        cfg.Group,
		TemplatePath: cfg.Template,
		OutputPath:   cfg.Output,
	}

	if cfg.NotifyEnabled() {
		discord, err := notify.NewDiscord(cfg.DiscordWebhookID, cfg.DiscordWebhookToken)
		if err != nil {
			return err
		}
		builder.Notifier = discord
	}

	_, err = builder.Run(context.Background())
	return err
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{}))
	slog.SetDefault(logger)

	err := build(logger)
	if err != nil {
		switch {
		case errors.Is(err, site.ErrTemplateMissing):
			logger.Error("template not found", "err", err)
		case errors.Is(err, mirea.ErrGroupNotFound):
			logger.Error("group not found", "err", err)
		default:
			logger.Error("failed to build schedule page", "err", err)
		}
		os.Exit(exitCode(err))
	}
}
