// Package main wires the HTTP server for the workspace team bot.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/ubclaunchpad/rocket2.0/config"
	"github.com/ubclaunchpad/rocket2.0/internal/command"
	githubgw "github.com/ubclaunchpad/rocket2.0/internal/gateway/github"
	slackgw "github.com/ubclaunchpad/rocket2.0/internal/gateway/slack"
	"github.com/ubclaunchpad/rocket2.0/internal/repository"
	"github.com/ubclaunchpad/rocket2.0/internal/transport/http/middleware"
	handlers_fiber "github.com/ubclaunchpad/rocket2.0/internal/transport/http/server/handlers-fiber"
	"github.com/ubclaunchpad/rocket2.0/internal/usecase"
	"github.com/ubclaunchpad/rocket2.0/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	gh, err := githubgw.New(ctx, log, cfg.Github)
	if err != nil {
		log.Errorw("github client initialization error", "error", err)
		return
	}
	sl := slackgw.New(log, cfg.Slack)

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, gh, sl, timeout)
	parser := command.NewParser(log, uc)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc, parser, sl, cfg.Slack.SigningSecret)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
