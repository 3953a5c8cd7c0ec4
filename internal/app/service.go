package app

import (
	"context"
	"fmt"
	"sync"

	"dexViews/internal/domain"
	"dexViews/internal/ports"
	"dexViews/internal/pricing"
	"dexViews/internal/views"
)

// ViewService holds the current input snapshot and serves the four derived
// views over it. It plays the reactive-store role the pure pipeline in
// internal/views deliberately stays out of: mutators swap in new immutable
// snapshots, accessors recompute views on demand.
//
// Each view result is memoized against a snapshot version counter. That is
// purely a performance shortcut — a cached result is byte-for-byte what a
// fresh computation over the same snapshot would produce.
type ViewService struct {
	logger ports.Logger

	mu      sync.Mutex
	snap    views.Snapshot
	version uint64

	myOpenOrders memo[[]domain.DecoratedOrder]
	tradeHistory memo[[]domain.DecoratedOrder]
	orderBook    memo[domain.OrderBook]
	priceChart   memo[domain.PriceChart]
}

// memo caches one view result for the snapshot version it was computed from.
type memo[T any] struct {
	version uint64
	valid   bool
	value   T
	ok      bool
}

// NewViewService creates a view service for the given pair selection and
// caller account. The pair may be incomplete; views stay undefined until
// both tokens are selected.
func NewViewService(logger ports.Logger, pair domain.TokenPair, account string) (*ViewService, error) {
	if logger == nil {
		return nil, fmt.Errorf("missing required logger dependency: %w", ports.ErrConfigurationError)
	}
	return &ViewService{
		logger: logger,
		snap:   views.Snapshot{Pair: pair, Account: account},
	}, nil
}

// ReplaceOrders installs new snapshots of the three event collections. The
// slices are owned by the caller and must not be mutated afterwards.
func (s *ViewService) ReplaceOrders(ctx context.Context, all, filled, cancelled []domain.Order) {
	s.mu.Lock()
	s.snap.All = all
	s.snap.Filled = filled
	s.snap.Cancelled = cancelled
	s.version++
	snap := s.snap
	s.mu.Unlock()

	s.reportDataQuality(ctx, snap)
}

// SelectTokenPair changes the active pair. Passing an incomplete pair is the
// legitimate "selection in progress" state and simply makes all views
// undefined until the pair is completed.
func (s *ViewService) SelectTokenPair(ctx context.Context, pair domain.TokenPair) {
	s.mu.Lock()
	s.snap.Pair = pair
	s.version++
	snap := s.snap
	s.mu.Unlock()

	s.reportDataQuality(ctx, snap)
}

// SetAccount changes the caller account the my-open-orders view filters by.
func (s *ViewService) SetAccount(ctx context.Context, account string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.Account = account
	s.version++
}

// MyOpenOrders returns the caller's open orders on the active pair, newest
// first. ok is false while no complete pair is selected.
func (s *ViewService) MyOpenOrders() ([]domain.DecoratedOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return compute(&s.myOpenOrders, s.version, s.snap, views.MyOpenOrders)
}

// TradeHistory returns the filled orders on the active pair, newest first.
func (s *ViewService) TradeHistory() ([]domain.DecoratedOrder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return compute(&s.tradeHistory, s.version, s.snap, views.TradeHistory)
}

// OrderBook returns the two-sided book of open orders on the active pair.
func (s *ViewService) OrderBook() (domain.OrderBook, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return compute(&s.orderBook, s.version, s.snap, views.OrderBook)
}

// PriceChart returns the hourly OHLC chart for the active pair.
func (s *ViewService) PriceChart() (domain.PriceChart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return compute(&s.priceChart, s.version, s.snap, views.PriceChart)
}

func compute[T any](m *memo[T], version uint64, snap views.Snapshot, fn func(views.Snapshot) (T, bool)) (T, bool) {
	if m.valid && m.version == version {
		return m.value, m.ok
	}
	m.value, m.ok = fn(snap)
	m.version = version
	m.valid = true
	return m.value, m.ok
}

// reportDataQuality logs the event-feed conditions the pipeline tolerates
// silently: ids present in both the filled and cancelled collections, and
// orders whose base amount is zero on the current pair. Both are upstream
// data problems; the views already exclude them deterministically.
func (s *ViewService) reportDataQuality(ctx context.Context, snap views.Snapshot) {
	for _, id := range views.SettledAnomalies(snap.Filled, snap.Cancelled) {
		s.logger.Warn(ctx, "order reported both filled and cancelled; excluded from open orders",
			map[string]interface{}{"order_id": id})
	}

	if !snap.Pair.Complete() {
		return
	}
	for _, o := range snap.All {
		if !snap.Pair.Includes(o.TokenGet) || !snap.Pair.Includes(o.TokenGive) {
			continue
		}
		if _, err := pricing.Normalize(o, snap.Pair); err != nil {
			s.logger.Warn(ctx, "order has undefined price; excluded from views",
				map[string]interface{}{"order_id": o.ID, "reason": err.Error()})
		}
	}
}
