package handlers_fiber

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"
	slackapi "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

// PostSlackEvents ingests the Slack Events API: request signature check,
// url_verification challenge, team_join onboarding, and app_mention command
// dispatch.
func (h *Handler) PostSlackEvents(c *fiber.Ctx) error {
	body := c.Body()

	if err := h.verifySignature(c, body); err != nil {
		h.log.Warnw("slack signature rejected", "error", err)
		return c.SendStatus(http.StatusUnauthorized)
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		h.log.Errorw("failed to parse slack event", "error", err)
		return c.SendStatus(http.StatusBadRequest)
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			return c.SendStatus(http.StatusBadRequest)
		}
		return c.Status(http.StatusOK).SendString(challenge.Challenge)

	case slackevents.CallbackEvent:
		h.handleCallback(c, event)
		return c.SendStatus(http.StatusOK)

	default:
		return c.SendStatus(http.StatusOK)
	}
}

func (h *Handler) handleCallback(c *fiber.Ctx, event slackevents.EventsAPIEvent) {
	switch ev := event.InnerEvent.Data.(type) {
	case *slackevents.TeamJoinEvent:
		if _, err := h.uc.OnboardUser(c.Context(), ev.User.ID); err != nil {
			h.log.Errorw("failed to onboard user", "error", err, "slack_id", ev.User.ID)
		}

	case *slackevents.AppMentionEvent:
		reply := h.parser.Handle(c.Context(), ev.User, ev.Text)
		if err := h.messenger.SendToChannel(c.Context(), reply, ev.Channel); err != nil {
			h.log.Errorw("failed to post command reply", "error", err, "channel", ev.Channel)
		}

	default:
		h.log.Debugw("unhandled slack event", "type", event.InnerEvent.Type)
	}
}

func (h *Handler) verifySignature(c *fiber.Ctx, body []byte) error {
	header := http.Header{}
	for k, values := range c.GetReqHeaders() {
		for _, v := range values {
			header.Add(k, v)
		}
	}

	sv, err := slackapi.NewSecretsVerifier(header, h.signingSecret)
	if err != nil {
		return err
	}
	if _, err := sv.Write(body); err != nil {
		return err
	}
	return sv.Ensure()
}
