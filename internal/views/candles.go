package views

import (
	"sort"
	"time"

	"dexViews/internal/domain"
)

const bucketSeconds = 3600

// BuildCandles reduces decorated filled orders into one OHLC candle per
// populated hour. The input must be sorted ascending by timestamp: within a
// bucket the first order sets the open, the last sets the close, and high/low
// ties keep the first occurrence. Bucket starts are unix timestamps truncated
// down to the hour, interpreted in UTC. Empty hours between trades produce no
// candle. The candles are emitted in chronological bucket order.
func BuildCandles(orders []domain.DecoratedOrder) []domain.Candle {
	var candles []domain.Candle
	index := make(map[int64]int, len(orders))

	for _, o := range orders {
		start := o.Timestamp - o.Timestamp%bucketSeconds
		i, ok := index[start]
		if !ok {
			index[start] = len(candles)
			candles = append(candles, domain.Candle{
				BucketStart: time.Unix(start, 0).UTC(),
				Open:        o.TokenPrice,
				High:        o.TokenPrice,
				Low:         o.TokenPrice,
				Close:       o.TokenPrice,
			})
			continue
		}
		if o.TokenPrice > candles[i].High {
			candles[i].High = o.TokenPrice
		}
		if o.TokenPrice < candles[i].Low {
			candles[i].Low = o.TokenPrice
		}
		candles[i].Close = o.TokenPrice
	}

	// First-seen order already matches chronology for a sorted input, but the
	// chart requires it, so sort explicitly rather than rely on the caller.
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].BucketStart.Before(candles[j].BucketStart)
	})
	return candles
}

// BuildPriceChart assembles the price-chart view from decorated filled orders
// sorted ascending by timestamp. LastPrice and LastPriceChange reflect the
// chronologically last and second-last trades; with fewer than two trades
// they default to 0 and "-", which is a legitimate thin-market state rather
// than an error.
func BuildPriceChart(orders []domain.DecoratedOrder) domain.PriceChart {
	chart := domain.PriceChart{
		LastPriceChange: domain.PriceDown,
		Series:          []domain.PriceSeries{{Data: BuildCandles(orders)}},
	}

	if len(orders) < 2 {
		return chart
	}

	chart.LastPrice = orders[len(orders)-1].TokenPrice
	secondLastPrice := orders[len(orders)-2].TokenPrice
	if chart.LastPrice >= secondLastPrice {
		chart.LastPriceChange = domain.PriceUp
	}
	return chart
}
