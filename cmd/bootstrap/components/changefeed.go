package components

import (
	"log/slog"

	"coworking-booking/internal/infra/changefeed"
	"coworking-booking/internal/pkg/clock"
	"coworking-booking/internal/pkg/config"
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var ChangeFeedModule = fx.Module("changefeed",
	fx.Invoke(StartChangeFeed),
)

// StartChangeFeed registers the outbox relay and the notifier with the
// lifecycle. With KAFKA_ENABLED=false nothing runs and events stay in the outbox.
func StartChangeFeed(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, notifications commands.NotificationCommands) error {
	if !cfg.Kafka.Enabled {
		slog.Info("change feed disabled, events stay in the outbox")
		return nil
	}

	publisher, err := changefeed.NewKafkaPublisher(cfg.Kafka)
	if err != nil {
		return err
	}
	subscriber, err := changefeed.NewKafkaSubscriber(cfg.Kafka)
	if err != nil {
		_ = publisher.Close()
		return err
	}

	relay := changefeed.NewRelay(uow, publisher, clk, cfg.Kafka.BatchSize, cfg.Kafka.MaxRetries, cfg.Kafka.PollInterval)
	notifier := changefeed.NewNotifier(subscriber, notifications, commands.NotifiedEvents, cfg.Kafka.MaxRetries)

	lc.Append(fx.StartStopHook(relay.Start, relay.Stop))
	lc.Append(fx.StartStopHook(notifier.Start, notifier.Stop))
	return nil
}
