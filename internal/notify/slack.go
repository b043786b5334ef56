package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/slack-go/slack"
)

var ErrNotConfigured = errors.New("slack notifier is not configured")

type SlackNotifier struct {
	api     *slack.Client
	channel string
}

func NewSlackNotifier(token, channel string, opts ...slack.Option) (*SlackNotifier, error) {
	if token == "" || channel == "" {
		return nil, fmt.Errorf("%w: SLACK_BOT_TOKEN and SLACK_CHANNEL_ID are required", ErrNotConfigured)
	}
	return &SlackNotifier{api: slack.New(token, opts...), channel: channel}, nil
}

func (n *SlackNotifier) Post(ctx context.Context, text string) error {
	channel, ts, err := n.api.PostMessageContext(ctx, n.channel, slack.MsgOptionText(text, false))
	if err != nil {
		slog.Error("[SlackNotifier] Failed to post message",
			slog.String("channel", n.channel),
			slog.String("error", err.Error()))
		return fmt.Errorf("[SlackNotifier] post failed: %w", err)
	}

	slog.Info("[SlackNotifier] Posted digest",
		slog.String("channel", channel),
		slog.String("ts", ts))
	return nil
}
