package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"kokoro-diary/app/client/api"
	"kokoro-diary/app/client/cli"
	"kokoro-diary/app/client/inits"
	"kokoro-diary/app/client/nav"
	"kokoro-diary/app/client/session"
	"kokoro-diary/app/client/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	l, err := inits.Logger(!cfg.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	l.Debug("logger initialized")

	store := storage.New(cfg.TokenPath)

	sess, err := session.New(store)
	if err != nil {
		l.Fatal("error initializing session", zap.Error(err))
	}

	apiClient := api.New(cfg.APIBaseURL, store, sess, l)
	router := nav.New(sess)
	app := cli.NewApp(cfg, l, sess, apiClient, router)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
