// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ubclaunchpad/rocket2.0/internal/command"
	"github.com/ubclaunchpad/rocket2.0/internal/gateway/slack"
	"github.com/ubclaunchpad/rocket2.0/internal/usecase"
)

// Handler serves the team read API and the Slack events webhook.
type Handler struct {
	log           *zap.SugaredLogger
	uc            usecase.InterfaceUsecase
	parser        *command.Parser
	messenger     slack.Interface
	signingSecret string
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(
	log *zap.SugaredLogger,
	uc usecase.InterfaceUsecase,
	parser *command.Parser,
	messenger slack.Interface,
	signingSecret string,
) *Handler {
	return &Handler{
		log:           log,
		uc:            uc,
		parser:        parser,
		messenger:     messenger,
		signingSecret: signingSecret,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/teams", h.GetTeams)
	app.Get("/api/teams/:slug", h.GetTeamBySlug)
	app.Post("/webhook/slack/events", h.PostSlackEvents)
}
