// Package mock generates a deterministic synthetic order event log for the
// demo binaries and for exercising the pipeline without a live event feed.
package mock

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"

	"dexViews/internal/domain"
)

// GeneratorConfig holds configuration for the order event generator.
type GeneratorConfig struct {
	Token0Address string
	Token1Address string
	Account       string // orders are attributed to this and a second synthetic maker
	Decimals      int32
	OrderCount    int
	StartTime     int64   // unix seconds of the first order
	StepSeconds   int64   // spacing between consecutive orders
	BasePrice     float64 // starting quote-per-base price
	Volatility    float64 // max relative price step per order
	Seed          int64
}

// DefaultGeneratorConfig returns a configuration that spreads orders over a
// few hour buckets with a gently drifting price.
func DefaultGeneratorConfig(token0, token1, account string) GeneratorConfig {
	return GeneratorConfig{
		Token0Address: token0,
		Token1Address: token1,
		Account:       account,
		Decimals:      18,
		OrderCount:    40,
		StartTime:     1_700_000_000,
		StepSeconds:   600,
		BasePrice:     2.0,
		Volatility:    0.05,
		Seed:          42,
	}
}

// EventLog is one generated snapshot of the three order collections.
type EventLog struct {
	All       []domain.Order
	Filled    []domain.Order
	Cancelled []domain.Order
}

// Generate produces a reproducible event log: every third order is filled,
// every seventh cancelled, sides alternate, and the price performs a seeded
// random walk around the base price.
func Generate(cfg GeneratorConfig) EventLog {
	rng := rand.New(rand.NewSource(cfg.Seed))
	makers := []string{cfg.Account, "0xfeed000000000000000000000000000000000001"}

	var log EventLog
	price := cfg.BasePrice
	for i := 0; i < cfg.OrderCount; i++ {
		price *= 1 + cfg.Volatility*(2*rng.Float64()-1)

		baseAmount := decimal.NewFromFloat(1 + rng.Float64()*9).Shift(cfg.Decimals).Truncate(0)
		quoteAmount := baseAmount.Mul(decimal.NewFromFloat(price)).Truncate(0)

		order := domain.Order{
			ID:        fmt.Sprintf("%d", i+1),
			User:      makers[i%len(makers)],
			Timestamp: cfg.StartTime + int64(i)*cfg.StepSeconds,
		}
		if i%2 == 0 {
			// Maker sells the base token.
			order.TokenGive = cfg.Token0Address
			order.AmountGive = baseAmount
			order.TokenGet = cfg.Token1Address
			order.AmountGet = quoteAmount
		} else {
			// Maker buys the base token.
			order.TokenGive = cfg.Token1Address
			order.AmountGive = quoteAmount
			order.TokenGet = cfg.Token0Address
			order.AmountGet = baseAmount
		}

		log.All = append(log.All, order)
		switch {
		case i%3 == 0:
			log.Filled = append(log.Filled, order)
		case i%7 == 0:
			log.Cancelled = append(log.Cancelled, order)
		}
	}
	return log
}
