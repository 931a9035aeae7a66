package email

import (
	"context"

	"ai-marketing-backend/internal/domain"
	"ai-marketing-backend/pkg/logger"

	"github.com/google/uuid"
)

// LogSender accepts every message and only logs it. Used when no provider is configured.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (s *LogSender) Name() string { return "log" }

func (s *LogSender) Send(ctx context.Context, msg domain.OutboundMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()
	logger.Log.Info("[EMAIL] message not delivered (log provider)",
		"message_id", id,
		"to", msg.To,
		"subject", msg.Subject,
		"html_bytes", len(msg.HTML),
	)
	return id, nil
}
