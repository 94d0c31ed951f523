// Command srsignal analyzes crypto market structure and prints graded
// trading signals. It fetches candles from Binance or Bybit, scores each
// instrument and optionally delivers reports to Telegram.
//
// Usage:
//
//	srsignal --config config.yaml
//	srsignal --pairs BTC_USDT,ETH_USDT --timeframe 4h
//	srsignal setup   (interactive wizard, writes config.gen.yaml)
//
// Kline endpoints are public; no exchange credentials are required.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adshao/go-binance/v2"
	bybit "github.com/hirokisan/bybit/v2"
	"go.uber.org/zap"

	"srsignal/config"
	"srsignal/internal/domain"
	"srsignal/internal/notifier"
	"srsignal/internal/report"
	"srsignal/internal/services/analysis"
	"srsignal/internal/services/marketdata"
	"srsignal/internal/setup"
	"srsignal/internal/storage/signals"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "setup" {
		if err := setup.RunTUI(); err != nil {
			log.Fatal(err)
		}
		os.Args = []string{os.Args[0], "--config", "config.gen.yaml"}
	}

	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	var provider marketdata.KlineProvider
	switch cfg.Platform {
	case "binance":
		provider = marketdata.NewBinanceProvider(binance.NewClient("", ""))
	case "bybit":
		provider = marketdata.NewBybitProvider(bybit.NewClient())
	default:
		log.Fatalf("unsupported platform %q", cfg.Platform)
	}

	store, err := signals.NewWALStore(cfg.WALDir)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	var notify notifier.Notifier = notifier.Noop{}
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != "" {
		notify = notifier.NewTelegram(logger, cfg.Telegram.Token, cfg.Telegram.ChatID)
	}

	svc := analysis.NewService(logger, provider, store, cfg.Analyzer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runBatch(ctx, logger, svc, notify, cfg)

	if cfg.PollInterval <= 0 {
		return
	}

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case <-ticker.C:
			runBatch(ctx, logger, svc, notify, cfg)
		}
	}
}

func runBatch(ctx context.Context, logger *zap.Logger, svc *analysis.Service, notify notifier.Notifier, cfg config.Config) {
	results := svc.AnalyzeBatch(ctx, cfg.Pairs, cfg.Timeframe, cfg.CandleLimit)

	for _, result := range results {
		fmt.Println(report.Format(result))
		fmt.Println()

		// only actionable outcomes are worth a push notification
		if result.Signal == domain.SignalHold || result.Signal == domain.SignalError {
			continue
		}
		if err := notify.Notify(ctx, report.Plain(result)); err != nil {
			logger.Error("failed to send notification",
				zap.String("symbol", result.Symbol),
				zap.Error(err))
		}
	}
}
