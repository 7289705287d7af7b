package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hrapp/internal/mailer"
	"hrapp/internal/messaging/kafka/consumer"

	"go.uber.org/zap"
)

func RunMailer() error {
	logger := zap.L().Named("app.mailer")

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	groupID := os.Getenv("KAFKA_MAILER_GROUP_ID")
	if groupID == "" {
		groupID = "hrapp-mailer"
	}

	smtpMailer := mailer.NewSMTPMailerFromEnv(logger)

	emailConsumer := consumer.NewEmailNotificationConsumer(kafkaBroker, groupID, smtpMailer, logger)
	defer emailConsumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	emailConsumer.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("mailer shutting down")
	cancel()

	return nil
}
