// Package slack wraps the Slack API as the channel directory and the bot's
// messaging surface.
package slack

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/ubclaunchpad/rocket2.0/config"
	"github.com/ubclaunchpad/rocket2.0/internal/entities"
)

// Interface is the channel directory and messaging contract. Every failure
// wraps entities.ErrRemoteAPI.
type Interface interface {
	GetChannelUsers(ctx context.Context, channel string) ([]string, error)
	SendDM(ctx context.Context, message, userID string) error
	SendToChannel(ctx context.Context, message, channel string) error
}

// Client implements Interface with the Slack web API.
type Client struct {
	log *zap.SugaredLogger
	api *slackapi.Client
}

var _ Interface = (*Client)(nil)

// New builds a client from the bot token.
func New(log *zap.SugaredLogger, cfg config.SlackConfig) *Client {
	return &Client{
		log: log.Named("gateway.slack"),
		api: slackapi.New(cfg.APIToken),
	}
}

// GetChannelUsers returns the Slack user ids of every member of the channel,
// following pagination cursors.
func (c *Client) GetChannelUsers(ctx context.Context, channel string) ([]string, error) {
	params := &slackapi.GetUsersInConversationParameters{
		ChannelID: channel,
		Limit:     200,
	}

	ids := make([]string, 0)
	for {
		members, cursor, err := c.api.GetUsersInConversationContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("%w: list users of channel %s: %v", entities.ErrRemoteAPI, channel, err)
		}
		ids = append(ids, members...)
		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}

	c.log.Debugw("channel users listed", "channel", channel, "count", len(ids))
	return ids, nil
}

// SendDM sends a direct message to a user.
func (c *Client) SendDM(ctx context.Context, message, userID string) error {
	if _, _, err := c.api.PostMessageContext(ctx, userID, slackapi.MsgOptionText(message, false)); err != nil {
		return fmt.Errorf("%w: direct message to %s: %v", entities.ErrRemoteAPI, userID, err)
	}
	return nil
}

// SendToChannel posts a message to a channel.
func (c *Client) SendToChannel(ctx context.Context, message, channel string) error {
	if _, _, err := c.api.PostMessageContext(ctx, channel, slackapi.MsgOptionText(message, false)); err != nil {
		return fmt.Errorf("%w: message to channel %s: %v", entities.ErrRemoteAPI, channel, err)
	}
	return nil
}
