package main

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/paperforge/paperforge/internal/access"
	api "github.com/paperforge/paperforge/internal/api/http"
	"github.com/paperforge/paperforge/internal/bot"
	"github.com/paperforge/paperforge/internal/config"
	"github.com/paperforge/paperforge/internal/db"
	"github.com/paperforge/paperforge/internal/extract"
	"github.com/paperforge/paperforge/internal/history"
	"github.com/paperforge/paperforge/internal/platform"
	"github.com/paperforge/paperforge/internal/storage"
)

func main() {
	cfg := config.FromEnv()

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	if cfg.BotToken == "" {
		logrus.Fatal("BOT_TOKEN is required")
	}
	if cfg.OwnerID == 0 {
		logrus.Fatal("OWNER_ID is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		logrus.Fatalf("db open failed: %v", err)
	}

	acl := access.NewSQLStore(dbh)
	if err := acl.Authorize(ctx, cfg.OwnerID, cfg.OwnerID); err != nil {
		logrus.Fatalf("seed owner: %v", err)
	}
	events := history.NewEventRepo(dbh)

	artifacts, err := storage.NewFSStore(cfg.ArtifactDir)
	if err != nil {
		logrus.Fatalf("artifact store: %v", err)
	}

	client := platform.NewClient(cfg.PlatformBaseURL, cfg.FetchTimeout)
	svc := extract.NewService(client, events, artifacts, cfg.LocaleID, cfg.Theme)

	authSvc := api.NewAuthService(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPassHash)
	router := api.NewRouter(authSvc, acl, events, svc, cfg.CORSOrigins)
	go func() {
		logrus.Infof("admin api listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
		logrus.Fatal(http.ListenAndServe(cfg.HTTPAddr, router))
	}()

	b, err := bot.New(bot.Options{
		Token:     cfg.BotToken,
		OwnerID:   cfg.OwnerID,
		PlanLabel: cfg.PlanLabel,
	}, svc, acl, events)
	if err != nil {
		logrus.Fatalf("bot init: %v", err)
	}
	b.Start()
}
