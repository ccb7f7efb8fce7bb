package main

import (
	"concierge/config"
	"concierge/infras/kafka"
	"concierge/infras/otel"
	"concierge/infras/redis"
	"concierge/internal/domains/chat/hub"
	"concierge/internal/domains/submission/notifier"
	"concierge/shared/logger"
	"concierge/shared/timezone"
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)
	timezone.Set(cfg.App.Timezone)

	if len(cfg.Kafka.Brokers) == 0 {
		log.Fatal().Msg("KAFKA_BROKERS is required for the notification worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracer := otel.New(cfg)

	// the API instances own the websocket connections
	staffHub := hub.NewPublisher(redis.New(cfg), cfg)
	defer staffHub.Shutdown()

	relay := notifier.New(staffHub, tracer)

	log.Info().Str("topic", cfg.Kafka.Topics.ServiceRequest).Msg("notification worker started")

	kafka.New(cfg).Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topics.ServiceRequest, relay.Handle)

	log.Info().Msg("notification worker stopped")
}
