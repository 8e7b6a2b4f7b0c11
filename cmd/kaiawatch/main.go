package main

import (
	"context"
	"log"

	"github.com/kaiawatch/kaiawatch/internal/account"
	"github.com/kaiawatch/kaiawatch/internal/botproc"
	"github.com/kaiawatch/kaiawatch/internal/chainpoll"
	"github.com/kaiawatch/kaiawatch/internal/config"
	"github.com/kaiawatch/kaiawatch/internal/handlers/cli"
	"github.com/kaiawatch/kaiawatch/internal/infra/kaiascan"
	"github.com/kaiawatch/kaiawatch/internal/infra/storage/redis"
	"github.com/kaiawatch/kaiawatch/internal/infra/telegram"
	"github.com/kaiawatch/kaiawatch/internal/notify"
	"github.com/kaiawatch/kaiawatch/internal/pkg/logger"
	"github.com/kaiawatch/kaiawatch/internal/pkg/resilience/retry"
	"github.com/kaiawatch/kaiawatch/internal/pkg/telemetry"
	xhttp "github.com/kaiawatch/kaiawatch/internal/pkg/transport/http"
	"github.com/kaiawatch/kaiawatch/internal/subscription"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			log.Fatalf("failed to initialize telemetry: %v", err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	storage, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to redis", "error", err)
	}
	defer storage.Close()

	explorer := kaiascan.NewClient(
		xhttp.NewClient(xhttp.WithTimeout(cfg.KaiascanTimeout)).StandardClient(),
		cfg.KaiascanBaseURL,
		cfg.KaiascanAPIToken,
	)

	api, err := telegram.NewAPI(cfg.TelegramBotToken)
	if err != nil {
		logger.Fatal(ctx, "failed to authenticate telegram bot", "error", err)
	}

	var (
		subscriptions = subscription.New(storage)
		accounts      = account.New(explorer)
		notifier      = notify.New(botproc.NewDirectory(storage, subscriptions), telegram.NewSink(api),
			notify.WithDeliveryLedger(storage),
			notify.WithRetry(retry.New()),
		)
		poller = chainpoll.New(explorer, storage, botproc.NewDispatcher(notifier),
			chainpoll.WithRetry(retry.New(retry.WithAttempts(5))),
			chainpoll.WithCursorStorage(storage),
			chainpoll.WithPollInterval(cfg.PollInterval),
			chainpoll.WithFetchTimeout(cfg.FetchTimeout),
			chainpoll.WithMaxConcurrentFetches(cfg.MaxConcurrentFetches),
		)
		bot = botproc.New(poller, telegram.NewBot(api, subscriptions, accounts))
	)

	if err := cli.Run(ctx, subscriptions, bot); err != nil {
		logger.Fatal(ctx, "kaiawatch terminated with an error", "error", err)
	}
}
