// Command export_candles computes the hourly candle series from a synthetic
// event log and writes it to CSV for offline charting.
package main

import (
	"context"
	"log"

	"dexViews/config"
	"dexViews/internal/adapters/logger"
	"dexViews/internal/app"
	"dexViews/internal/mock"
	"dexViews/internal/ports"
	"dexViews/internal/utils"
)

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	appLogger := logger.NewStdLogger(cfg.LogLevel)

	pair := cfg.TokenPair()
	if !pair.Complete() {
		appLogger.Error(ctx, ports.ErrIncompleteTokenPair, "FATAL: Cannot export candles without a complete token pair")
		log.Fatalf("FATAL: set TOKEN0_ADDRESS and TOKEN1_ADDRESS to export candles")
	}

	svc, err := app.NewViewService(appLogger, pair, cfg.AccountAddress)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize view service: %v", err)
	}

	events := mock.Generate(mock.DefaultGeneratorConfig(cfg.Token0Address, cfg.Token1Address, cfg.AccountAddress))
	svc.ReplaceOrders(ctx, events.All, events.Filled, events.Cancelled)

	chart, ok := svc.PriceChart()
	if !ok || len(chart.Series) == 0 {
		log.Fatalf("FATAL: price chart is undefined")
	}

	if err := utils.WriteCandlesToCSV(chart.Series[0].Data, cfg.CandleCSVPath); err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to write candle CSV")
		log.Fatalf("FATAL: Failed to write candle CSV: %v", err)
	}
	appLogger.Info(ctx, "Candle CSV written", map[string]interface{}{
		"path":    cfg.CandleCSVPath,
		"candles": len(chart.Series[0].Data),
	})
}
