package main

import (
	"encoding/json"
	"fmt"

	"clothly/internal/models"
	"clothly/internal/services"
	"clothly/pkg/rabbitmq"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Log catalog events from RabbitMQ until interrupted",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

// catalogEventHandler logs catalog.imported deliveries. Undecodable messages
// are logged and acked.
func catalogEventHandler(logger logrus.FieldLogger) func(msg amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		if msg.Type != "" && msg.Type != services.CatalogImportedEvent {
			logger.WithField("type", msg.Type).Debug("Ignoring event")
			return nil
		}

		var event models.CatalogImported
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			logger.WithError(err).WithField("delivery_tag", msg.DeliveryTag).Error("Dropping malformed catalog event")
			return nil
		}
		logger.WithFields(logrus.Fields{
			"import_id":  event.ImportID,
			"collection": event.Collection,
			"count":      event.Count,
			"replaced":   event.Replaced,
		}).Info("Catalog imported")
		return nil
	}
}

func runEvents(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.RabbitMQURL == "" {
		return fmt.Errorf("RABBITMQ_URL is not set")
	}

	mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Logger: logger})
	if err != nil {
		return err
	}
	defer mq.Close()

	logger.WithField("queue", rabbitmq.DefaultQueue).Info("Consuming catalog events")
	return mq.ConsumeEvents(cmd.Context(), catalogEventHandler(logger))
}
