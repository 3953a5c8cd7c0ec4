// Package pricing derives normalized amounts and a unit price from a raw
// order and the active token pair.
package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"dexViews/internal/domain"
	"dexViews/internal/ports"
)

// pricePlaces is the number of decimal places a token price is rounded to.
const pricePlaces = 5

// Quote holds the pair-normalized view of an order's two amounts.
type Quote struct {
	Token0Amount decimal.Decimal // base-token amount, human-scaled
	Token1Amount decimal.Decimal // quote-token amount, human-scaled
	TokenPrice   float64         // Token1Amount / Token0Amount, rounded half-up to 5 places
}

// Normalize maps the order's give/get amounts onto the pair's base and quote
// tokens and computes the unit price.
//
// The assignment depends only on which direction each token flows, never on
// the order's side: when the maker gives token0 it wants token1, so amountGive
// is the base amount; otherwise the maker gives token1 to get token0, and
// amountGet is the base amount. Amounts are scaled from smallest units by each
// token's configured decimals, as exact decimal arithmetic.
//
// An order with a zero base amount has no defined price: the returned quote
// carries NaN as its price sentinel alongside ports.ErrZeroBaseAmount, and the
// caller decides whether to skip or report the order.
func Normalize(order domain.Order, pair domain.TokenPair) (Quote, error) {
	var token0Amount, token1Amount decimal.Decimal
	if order.TokenGive == pair.Token0.Address {
		token0Amount = order.AmountGive
		token1Amount = order.AmountGet
	} else {
		token0Amount = order.AmountGet
		token1Amount = order.AmountGive
	}

	q := Quote{
		Token0Amount: token0Amount.Shift(-pair.Token0.Decimals),
		Token1Amount: token1Amount.Shift(-pair.Token1.Decimals),
	}

	if q.Token0Amount.IsZero() {
		q.TokenPrice = math.NaN()
		return q, ports.ErrZeroBaseAmount
	}

	// decimal.Round is round-half-away-from-zero, i.e. round-half-up for the
	// non-negative amounts that occur here.
	q.TokenPrice = q.Token1Amount.Div(q.Token0Amount).Round(pricePlaces).InexactFloat64()
	return q, nil
}

// AssignSide labels the order buy or sell relative to the pair's base token:
// an order giving the quote token is buying the base token.
func AssignSide(order domain.Order, pair domain.TokenPair) domain.OrderSide {
	if order.TokenGive == pair.Token1.Address {
		return domain.Buy
	}
	return domain.Sell
}
