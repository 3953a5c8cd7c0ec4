package domain

import "time"

// Candle is an OHLC summary of trade prices within one hour bucket.
// Buckets are truncated to the hour in UTC.
type Candle struct {
	BucketStart time.Time `json:"bucketStart"`
	Open        float64   `json:"open"`
	High        float64   `json:"high"`
	Low         float64   `json:"low"`
	Close       float64   `json:"close"`
}

// PriceSeries is one plottable series of candles.
type PriceSeries struct {
	Data []Candle `json:"data"`
}

// PriceChart is the composed price-chart view.
type PriceChart struct {
	LastPrice       float64       `json:"lastPrice"`
	LastPriceChange string        `json:"lastPriceChange"` // PriceUp or PriceDown
	Series          []PriceSeries `json:"series"`
}

// OrderBook is the composed order-book view. BuyOrders/SellOrders are the
// price-sorted slices; Buy/Sell alias the same slices under the historical
// field names some consumers still expect.
type OrderBook struct {
	Buy        []DecoratedOrder `json:"buy"`
	Sell       []DecoratedOrder `json:"sell"`
	BuyOrders  []DecoratedOrder `json:"buyOrders"`
	SellOrders []DecoratedOrder `json:"sellOrders"`
}
