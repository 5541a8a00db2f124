package line

import (
	"context"
	"countdown/internal/domain/entity"
	"countdown/internal/pkg/logger"
	"errors"
	"fmt"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Client wraps the linebot.Client and pushes fired notifications to one recipient.
type Client struct {
	*linebot.Client
	to  string
	log logger.Logger
}

// NewClient creates a LINE Bot client that pushes to the given user ID.
func NewClient(channelSecret, channelToken, to string, log logger.Logger, opts ...linebot.ClientOption) (*Client, error) {
	if channelSecret == "" || channelToken == "" || to == "" {
		return nil, errors.New("channel secret, channel access token and recipient must be set")
	}
	bot, err := linebot.New(channelSecret, channelToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client: bot,
		to:     to,
		log:    log,
	}, nil
}

// PushMessages sends one or more messages using the PushMessage API.
func (c *Client) PushMessages(ctx context.Context, to string, messages ...linebot.SendingMessage) error {
	if _, err := c.PushMessage(to, messages...).WithContext(ctx).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}

// Deliver pushes the notification title and body as a single text message.
func (c *Client) Deliver(ctx context.Context, n entity.Notification) error {
	text := n.Title
	if n.Body != "" {
		text = fmt.Sprintf("%s\n%s", n.Title, n.Body)
	}
	return c.PushMessages(ctx, c.to, linebot.NewTextMessage(text))
}
