package main

import (
	"context"
	"fmt"
	"os"

	authservice "clubmanager/auth/service"
	"clubmanager/auth/session"
	"clubmanager/internal/config"
	"clubmanager/internal/logger"
	"clubmanager/internal/migrate"
	"clubmanager/internal/notify"
	"clubmanager/internal/service"
	"clubmanager/internal/storage/sqlite"
	"clubmanager/internal/web"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine, the config file carries the defaults.
	_ = godotenv.Load()

	cfg, err := config.New("configs/server.toml")
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := sqlite.Open(cfg.Server.SqliteFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("closing database")
		}
	}()
	if err := migrate.Up(db); err != nil {
		return err
	}

	st := sqlite.New(db, log)
	sessions := session.NewRegistry()

	ctx := context.Background()
	auth, err := authservice.New(ctx, cfg.Auth, st, sessions, log)
	if err != nil {
		return err
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.TgBot.Enabled {
		tg, err := notify.NewTelegram(cfg.TgBot, log)
		if err != nil {
			return err
		}
		notifier = tg
	}

	server, err := web.New(web.Services{
		Auth:        auth,
		Matches:     service.NewMatchService(st, notifier, log),
		Trainings:   service.NewTrainingService(st, notifier, log),
		Players:     service.NewPlayerService(st, cfg.Auth.DefaultPlayerPassword, log),
		Users:       service.NewUserService(st, log),
		Attendance:  service.NewAttendanceService(st, log),
		Evaluations: service.NewEvaluationService(st, log),
		Stats:       service.NewStatsService(st),
		Items:       service.NewItemService(st, log),
	}, cfg.Server, log)
	if err != nil {
		return err
	}

	log.WithField("port", cfg.Server.Port).Info("server starting")
	return server.Serve()
}
