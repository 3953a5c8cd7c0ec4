package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log" // Use standard log only for initial fatal errors before logger is set up

	"dexViews/config"
	"dexViews/internal/adapters/logger"
	"dexViews/internal/app"
	"dexViews/internal/mock"
)

func main() {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	pair := cfg.TokenPair()
	if !pair.Complete() {
		appLogger.Warn(ctx, "Token pair incomplete; all views will be undefined until TOKEN0_ADDRESS and TOKEN1_ADDRESS are set")
	}

	// 3. Initialize View Service
	svc, err := app.NewViewService(appLogger, pair, cfg.AccountAddress)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize view service")
		log.Fatalf("FATAL: Failed to initialize view service: %v", err)
	}

	// 4. Feed a synthetic event log. A real deployment replaces this with the
	// blockchain event ingestion collaborator.
	events := mock.Generate(mock.DefaultGeneratorConfig(cfg.Token0Address, cfg.Token1Address, cfg.AccountAddress))
	svc.ReplaceOrders(ctx, events.All, events.Filled, events.Cancelled)
	appLogger.Info(ctx, "Synthetic event log loaded", map[string]interface{}{
		"all":       len(events.All),
		"filled":    len(events.Filled),
		"cancelled": len(events.Cancelled),
	})

	// 5. Render all four views
	if orders, ok := svc.MyOpenOrders(); ok {
		printView("myOpenOrders", orders)
	}
	if orders, ok := svc.TradeHistory(); ok {
		printView("tradeHistory", orders)
	}
	if book, ok := svc.OrderBook(); ok {
		printView("orderBook", book)
	}
	if chart, ok := svc.PriceChart(); ok {
		printView("priceChart", chart)
	}
}

func printView(name string, view interface{}) {
	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		log.Fatalf("FATAL: Failed to marshal %s view: %v", name, err)
	}
	fmt.Printf("--- %s ---\n%s\n", name, out)
}
