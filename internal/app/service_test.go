package app

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexViews/internal/domain"
)

const (
	token0 = "0x00000000000000000000000000000000000000t0"
	token1 = "0x00000000000000000000000000000000000000t1"
	alice  = "0xa11ce00000000000000000000000000000000000"
	bob    = "0xb0b0000000000000000000000000000000000000"
)

// mockLogger implements ports.Logger for testing
type mockLogger struct {
	debugMsgs []string
	infoMsgs  []string
	warnMsgs  []string
	errorMsgs []string
}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.debugMsgs = append(m.debugMsgs, msg)
}

func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.infoMsgs = append(m.infoMsgs, msg)
}

func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{}) {
	m.warnMsgs = append(m.warnMsgs, msg)
}

func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
	m.errorMsgs = append(m.errorMsgs, msg)
}

func testPair() domain.TokenPair {
	return domain.TokenPair{
		Token0: &domain.Token{Address: token0, Symbol: "DAPP", Decimals: 18},
		Token1: &domain.Token{Address: token1, Symbol: "mETH", Decimals: 18},
	}
}

func sellOrder(id, user string, ts int64, base, price string) domain.Order {
	b := decimal.RequireFromString(base)
	return domain.Order{
		ID: id, User: user, Timestamp: ts,
		TokenGive: token0, AmountGive: b.Shift(18),
		TokenGet: token1, AmountGet: b.Mul(decimal.RequireFromString(price)).Shift(18),
	}
}

func TestNewViewService(t *testing.T) {
	_, err := NewViewService(nil, testPair(), alice)
	require.Error(t, err)

	svc, err := NewViewService(&mockLogger{}, testPair(), alice)
	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestViewServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	log := &mockLogger{}
	svc, err := NewViewService(log, domain.TokenPair{}, alice)
	require.NoError(t, err)

	// No pair selected: every view is undefined, not an error.
	_, ok := svc.TradeHistory()
	assert.False(t, ok)
	_, ok = svc.MyOpenOrders()
	assert.False(t, ok)

	all := []domain.Order{
		sellOrder("1", alice, 100, "1", "2"),
		sellOrder("2", bob, 200, "1", "3"),
		sellOrder("3", alice, 300, "1", "4"),
	}
	svc.ReplaceOrders(ctx, all, []domain.Order{all[1]}, nil)
	svc.SelectTokenPair(ctx, testPair())

	history, ok := svc.TradeHistory()
	require.True(t, ok)
	require.Len(t, history, 1)
	assert.Equal(t, "2", history[0].ID)

	mine, ok := svc.MyOpenOrders()
	require.True(t, ok)
	assert.Len(t, mine, 2)

	book, ok := svc.OrderBook()
	require.True(t, ok)
	assert.Len(t, book.SellOrders, 2)
	assert.Empty(t, book.BuyOrders)

	chart, ok := svc.PriceChart()
	require.True(t, ok)
	require.Len(t, chart.Series, 1)
	assert.Len(t, chart.Series[0].Data, 1)

	// Switching the account re-scopes my-open-orders.
	svc.SetAccount(ctx, bob)
	mine, ok = svc.MyOpenOrders()
	require.True(t, ok)
	assert.Empty(t, mine)
}

func TestViewServiceMemoization(t *testing.T) {
	ctx := context.Background()
	svc, err := NewViewService(&mockLogger{}, testPair(), alice)
	require.NoError(t, err)

	orders := []domain.Order{sellOrder("1", alice, 100, "1", "2")}
	svc.ReplaceOrders(ctx, orders, orders, nil)

	first, ok := svc.TradeHistory()
	require.True(t, ok)
	cached, ok := svc.TradeHistory()
	require.True(t, ok)
	assert.Equal(t, first, cached)

	// A new snapshot invalidates the cache.
	svc.ReplaceOrders(ctx, orders, nil, nil)
	refreshed, ok := svc.TradeHistory()
	require.True(t, ok)
	assert.Empty(t, refreshed)
}

func TestViewServiceReportsDataQuality(t *testing.T) {
	ctx := context.Background()
	log := &mockLogger{}
	svc, err := NewViewService(log, testPair(), alice)
	require.NoError(t, err)

	contradictory := sellOrder("1", alice, 100, "1", "2")
	zeroBase := domain.Order{
		ID: "2", User: bob, Timestamp: 200,
		TokenGive: token0, AmountGive: decimal.Zero,
		TokenGet: token1, AmountGet: decimal.New(1, 18),
	}

	svc.ReplaceOrders(ctx,
		[]domain.Order{contradictory, zeroBase},
		[]domain.Order{contradictory},
		[]domain.Order{contradictory},
	)

	require.Len(t, log.warnMsgs, 2)
	assert.Contains(t, log.warnMsgs[0], "both filled and cancelled")
	assert.Contains(t, log.warnMsgs[1], "undefined price")

	// The contradictory order is deterministically excluded from open orders.
	mine, ok := svc.MyOpenOrders()
	require.True(t, ok)
	assert.Empty(t, mine)
}
