package domain

import "github.com/shopspring/decimal"

// Order is a single order event from the on-chain event log. Amounts are in
// the token's smallest unit and routinely exceed int64 (10^27 and above), so
// they are carried as decimals end to end.
type Order struct {
	ID         string          `json:"id"` // unique within each event collection
	User       string          `json:"user"`
	TokenGet   string          `json:"tokenGet"`  // address of the token the maker wants
	TokenGive  string          `json:"tokenGive"` // address of the token the maker offers
	AmountGet  decimal.Decimal `json:"amountGet"`
	AmountGive decimal.Decimal `json:"amountGive"`
	Timestamp  int64           `json:"timestamp"` // unix seconds
}

// DecoratedOrder is an Order enriched with derived display and pricing fields.
// It is built fresh from an Order on every view computation and never mutated
// afterwards; the embedded Order is copied, not referenced.
type DecoratedOrder struct {
	Order

	Token0Amount       string  `json:"token0Amount"` // human-scaled decimal string
	Token1Amount       string  `json:"token1Amount"`
	TokenPrice         float64 `json:"tokenPrice"` // quote per base, 5 decimal places
	FormattedTimestamp string  `json:"formattedTimestamp"`

	// View-specific fields; zero-valued when the view does not use them.
	OrderType       OrderSide  `json:"orderType,omitempty"`
	OrderTypeClass  TrendColor `json:"orderTypeClass,omitempty"`
	OrderFillAction OrderSide  `json:"orderFillAction,omitempty"` // order-book view only
	TokenPriceClass TrendColor `json:"tokenPriceClass,omitempty"` // trade-history view only
}
