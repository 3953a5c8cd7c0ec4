package domain

// OrderSide classifies an order relative to the base token of the active pair.
type OrderSide string

const (
	Buy  OrderSide = "buy"
	Sell OrderSide = "sell"
)

// Opposite returns the side a counterparty takes to fill an order of this side.
func (s OrderSide) Opposite() OrderSide {
	if s == Buy {
		return Sell
	}
	return Buy
}

// TrendColor is the display color attached to decorated orders. The hex values
// are rendered as-is by the presentation layer.
type TrendColor string

const (
	TrendGreen TrendColor = "#25CE8F"
	TrendRed   TrendColor = "#F45353"
)

// Direction markers for the most recent trade price relative to the one
// before it.
const (
	PriceUp   = "+"
	PriceDown = "-"
)
