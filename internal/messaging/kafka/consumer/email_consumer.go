package consumer

import (
	"context"
	"encoding/json"
	"time"

	"hrapp/internal/events"
	"hrapp/internal/mailer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type EmailNotificationConsumer struct {
	reader *kafkago.Reader
	mailer mailer.Mailer
	logger *zap.Logger
}

func NewEmailNotificationConsumer(
	broker string,
	groupID string,
	m mailer.Mailer,
	logger ...*zap.Logger,
) *EmailNotificationConsumer {
	l := zap.L().Named("notification.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.consumer")
	}

	return &EmailNotificationConsumer{
		reader: kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.EmailNotificationTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafkago.FirstOffset,
		}),
		mailer: m,
		logger: l,
	}
}

func (c *EmailNotificationConsumer) Close() error {
	return c.reader.Close()
}

func (c *EmailNotificationConsumer) Start(ctx context.Context) {
	go func() {
		for {
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Error("consume email notification failed", zap.Error(err))
				continue
			}

			var event events.PasswordResetRequestedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				// Payload rusak tidak akan pernah valid, commit supaya tidak macet.
				c.logger.Error("decode email notification event failed", zap.Error(err))
				if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
					c.logger.Error("commit invalid email notification event failed", zap.Error(commitErr))
				}
				continue
			}

			if event.EventType != events.EventTypePasswordResetRequested {
				c.logger.Warn("unknown email notification event type, skipping",
					zap.String("event_type", event.EventType),
				)
				if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
					c.logger.Error("commit unknown email notification event failed", zap.Error(commitErr))
				}
				continue
			}

			if err := c.mailer.SendPasswordResetEmail(ctx, event.Email, event.Name, event.Code, event.ExpiresInMinutes); err != nil {
				// Biarkan tanpa commit agar di-retry pada fetch berikutnya.
				c.logger.Error("send password reset email failed",
					zap.String("email", event.Email),
					zap.Error(err),
				)
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("commit email notification event failed", zap.Error(err))
				continue
			}

			c.logger.Info("password reset email sent",
				zap.String("email", event.Email),
			)
		}
	}()
}
