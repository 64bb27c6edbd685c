package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"telegram-affiliate-bot/internal/application"
	"telegram-affiliate-bot/internal/config"
	"telegram-affiliate-bot/internal/infra/adapters/aliexpress"
	"telegram-affiliate-bot/internal/infra/adapters/rates"
	"telegram-affiliate-bot/internal/infra/adapters/resolve"
	tele "telegram-affiliate-bot/internal/infra/adapters/telegram"
	httpapi "telegram-affiliate-bot/internal/infra/http"
	"telegram-affiliate-bot/internal/infra/i18n"
	"telegram-affiliate-bot/internal/infra/logging"
	"telegram-affiliate-bot/internal/infra/metrics"
	"telegram-affiliate-bot/internal/infra/worker"
	"telegram-affiliate-bot/internal/usecase"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfgPath := flag.String("config", "", "optional path to YAML config file")
	devMode := flag.Bool("dev", false, "development mode (console logs)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log, *devMode)
	metrics.MustRegister()

	tr, err := i18n.NewTranslator(i18n.LocalesFS, cfg.Bot.Locale)
	if err != nil {
		logger.Fatal().Err(err).Str("locale", cfg.Bot.Locale).Msg("load translations")
	}

	// ---- Transport ----
	pool := worker.NewPool(cfg.Bot.Workers, logger)
	bot, err := tele.NewRealBotAdapter(cfg.Bot.Token, pool, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("telegram bot")
	}
	logger.Info().Str("username", bot.Username()).Msg("authorized on telegram")

	// ---- External service clients ----
	follower := resolve.NewChainFollower(cfg.Pipeline.ResolveTimeout)
	affiliateClient := aliexpress.NewClient(
		cfg.Aliexpress.AppKey,
		cfg.Aliexpress.AppSecret,
		cfg.Aliexpress.TrackingID,
		cfg.Aliexpress.BaseURL,
		cfg.Pipeline.CallTimeout,
		logger,
	)
	rateClient := rates.NewExchangeRateClient(cfg.Rates.BaseURL, cfg.Pipeline.CallTimeout)

	// ---- Pipeline ----
	resolver := usecase.NewResolver(follower, logger)
	affiliates := usecase.NewAffiliateService(affiliateClient, logger)
	converter := usecase.NewCurrencyConverter(rateClient, cfg.Rates.TargetCurrency, logger)
	composer := usecase.NewComposer(tr)
	pipeline := usecase.NewPipeline(
		usecase.NewLinkExtractor(),
		resolver,
		affiliates,
		converter,
		composer,
		cfg.Pipeline.ResolveTimeout,
		cfg.Pipeline.CallTimeout,
		logger,
	)

	facade := application.NewBotFacade(pipeline, bot, tr, logger)
	bot.AttachFacade(facade)

	pool.Start(ctx)
	defer pool.Stop()

	// ---- HTTP (health + metrics, webhook endpoint in webhook mode) ----
	srv := httpapi.NewServer(cfg.HTTP.Port, bot, cfg.WebhookMode(), logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("http server failed")
			cancel()
		}
	}()

	if cfg.WebhookMode() {
		if err := bot.SetWebhook(cfg.Bot.WebhookURL); err != nil {
			logger.Fatal().Err(err).Str("url", cfg.Bot.WebhookURL).Msg("set webhook")
		}
		logger.Info().Str("url", cfg.Bot.WebhookURL).Msg("running in webhook mode")
		<-ctx.Done()
	} else {
		if err := bot.RemoveWebhook(); err != nil {
			logger.Warn().Err(err).Msg("remove webhook")
		}
		logger.Info().Msg("running in polling mode")
		if err := bot.StartPolling(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error().Err(err).Msg("polling stopped")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn().Err(err).Msg("http shutdown")
	}
	logger.Info().Msg("bye")
}
