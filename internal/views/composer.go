package views

import (
	"sort"
	"time"

	"dexViews/internal/domain"
	"dexViews/internal/pricing"
)

// timestampLayout renders order timestamps for display, in UTC.
const timestampLayout = "3:04:05pm 2 Jan"

// Snapshot is one immutable observation of everything the views derive from:
// the three event-log collections, the selected pair, and the caller's
// account. All composer functions are pure over a Snapshot, which keeps them
// trivially re-entrant and lets any reactive scheduler recompute them
// whenever an input changes.
type Snapshot struct {
	All       []domain.Order
	Filled    []domain.Order
	Cancelled []domain.Order
	Pair      domain.TokenPair
	Account   string
}

// MyOpenOrders composes the caller's open orders on the active pair, newest
// first. ok is false while the pair is incomplete — the "nothing selected"
// steady state, not an error.
func MyOpenOrders(snap Snapshot) (orders []domain.DecoratedOrder, ok bool) {
	if !snap.Pair.Complete() {
		return nil, false
	}

	open := OpenOrders(snap.All, snap.Filled, snap.Cancelled)

	mine := make([]domain.Order, 0, len(open))
	for _, o := range open {
		if o.User == snap.Account {
			mine = append(mine, o)
		}
	}

	decorated := decorateAll(filterByPair(mine, snap.Pair), snap.Pair, decorateSide)
	sortByTimestampDesc(decorated)
	return decorated, true
}

// TradeHistory composes the filled orders on the active pair. Trend colors
// come from a timestamp-ascending pass; the result is then flipped to newest
// first for display.
func TradeHistory(snap Snapshot) (orders []domain.DecoratedOrder, ok bool) {
	if !snap.Pair.Complete() {
		return nil, false
	}

	filled := filterByPair(snap.Filled, snap.Pair)
	sortByTimestampAsc(filled)

	decorated := ColorTrend(decorateAll(filled, snap.Pair, nil))
	sortByTimestampDesc(decorated)
	return decorated, true
}

// OrderBook composes the two-sided book from all open orders on the active
// pair, each side sorted descending by price.
func OrderBook(snap Snapshot) (book domain.OrderBook, ok bool) {
	if !snap.Pair.Complete() {
		return domain.OrderBook{}, false
	}

	open := filterByPair(OpenOrders(snap.All, snap.Filled, snap.Cancelled), snap.Pair)
	decorated := decorateAll(open, snap.Pair, decorateBook)
	return BuildOrderBook(decorated), true
}

// PriceChart composes the hourly OHLC chart plus last-price direction from
// the filled orders on the active pair.
func PriceChart(snap Snapshot) (chart domain.PriceChart, ok bool) {
	if !snap.Pair.Complete() {
		return domain.PriceChart{}, false
	}

	filled := filterByPair(snap.Filled, snap.Pair)
	sortByTimestampAsc(filled)
	return BuildPriceChart(decorateAll(filled, snap.Pair, nil)), true
}

// filterByPair keeps the orders trading exclusively within the pair: both the
// wanted and the offered token must be one of the two active addresses.
// Returns a fresh slice so later sorts never touch the snapshot.
func filterByPair(orders []domain.Order, pair domain.TokenPair) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if pair.Includes(o.TokenGet) && pair.Includes(o.TokenGive) {
			out = append(out, o)
		}
	}
	return out
}

// decorateAll builds a DecoratedOrder per input order, applying extra as the
// view-specific decoration when non-nil. Orders with an undefined price (zero
// base amount) are excluded so the NaN sentinel never reaches sorting,
// bucketing, or trend comparison; the service layer reports them separately.
func decorateAll(orders []domain.Order, pair domain.TokenPair, extra func(*domain.DecoratedOrder, domain.TokenPair)) []domain.DecoratedOrder {
	out := make([]domain.DecoratedOrder, 0, len(orders))
	for _, o := range orders {
		q, err := pricing.Normalize(o, pair)
		if err != nil {
			continue
		}
		d := domain.DecoratedOrder{
			Order:              o,
			Token0Amount:       q.Token0Amount.String(),
			Token1Amount:       q.Token1Amount.String(),
			TokenPrice:         q.TokenPrice,
			FormattedTimestamp: time.Unix(o.Timestamp, 0).UTC().Format(timestampLayout),
		}
		if extra != nil {
			extra(&d, pair)
		}
		out = append(out, d)
	}
	return out
}

// decorateSide adds the side fields used by the my-open-orders view.
func decorateSide(d *domain.DecoratedOrder, pair domain.TokenPair) {
	d.OrderType = pricing.AssignSide(d.Order, pair)
	d.OrderTypeClass = sideColor(d.OrderType)
}

// decorateBook adds the side fields plus the counterparty fill action used by
// the order-book view.
func decorateBook(d *domain.DecoratedOrder, pair domain.TokenPair) {
	decorateSide(d, pair)
	d.OrderFillAction = d.OrderType.Opposite()
}

func sideColor(side domain.OrderSide) domain.TrendColor {
	if side == domain.Buy {
		return domain.TrendGreen
	}
	return domain.TrendRed
}

func sortByTimestampAsc(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Timestamp < orders[j].Timestamp
	})
}

func sortByTimestampDesc(orders []domain.DecoratedOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Timestamp > orders[j].Timestamp
	})
}
