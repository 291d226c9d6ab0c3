package handlers_fiber

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ubclaunchpad/rocket2.0/internal/mapper"
)

// GetTeams returns every team with its membership.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.TeamList(c.Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(struct {
		Teams []mapper.Team `json:"teams"`
	}{Teams: mapper.ToTeams(teams)})
}

// GetTeamBySlug returns the single team with the given name slug.
func (h *Handler) GetTeamBySlug(c *fiber.Ctx) error {
	team, err := h.uc.TeamView(c.Context(), c.Params("slug"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToTeam(*team))
}
