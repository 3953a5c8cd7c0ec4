package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dexViews/internal/domain"
)

func sided(id string, side domain.OrderSide, price float64) domain.DecoratedOrder {
	return domain.DecoratedOrder{
		Order:      domain.Order{ID: id},
		TokenPrice: price,
		OrderType:  side,
	}
}

func TestBuildOrderBook(t *testing.T) {
	book := BuildOrderBook([]domain.DecoratedOrder{
		sided("s1", domain.Sell, 1.5),
		sided("b1", domain.Buy, 2.0),
		sided("s2", domain.Sell, 3.0),
		sided("b2", domain.Buy, 1.0),
		sided("b3", domain.Buy, 2.5),
	})

	require.Len(t, book.BuyOrders, 3)
	require.Len(t, book.SellOrders, 2)

	assert.Equal(t, "b3", book.BuyOrders[0].ID)
	assert.Equal(t, "b1", book.BuyOrders[1].ID)
	assert.Equal(t, "b2", book.BuyOrders[2].ID)
	assert.Equal(t, "s2", book.SellOrders[0].ID)
	assert.Equal(t, "s1", book.SellOrders[1].ID)

	// Both naming conventions expose the same sorted slices.
	assert.Equal(t, book.BuyOrders, book.Buy)
	assert.Equal(t, book.SellOrders, book.Sell)
}

// Adjacent prices are non-increasing on each side.
func TestBuildOrderBookPriceMonotonic(t *testing.T) {
	book := BuildOrderBook([]domain.DecoratedOrder{
		sided("a", domain.Buy, 1.2),
		sided("b", domain.Buy, 5.0),
		sided("c", domain.Buy, 0.4),
		sided("d", domain.Sell, 2.2),
		sided("e", domain.Sell, 2.2),
		sided("f", domain.Sell, 9.1),
	})

	for _, side := range [][]domain.DecoratedOrder{book.BuyOrders, book.SellOrders} {
		for i := 1; i < len(side); i++ {
			assert.GreaterOrEqual(t, side[i-1].TokenPrice, side[i].TokenPrice)
		}
	}
}

// Equal-price orders keep their original relative order.
func TestBuildOrderBookStableTies(t *testing.T) {
	book := BuildOrderBook([]domain.DecoratedOrder{
		sided("first", domain.Sell, 2.0),
		sided("second", domain.Sell, 2.0),
		sided("third", domain.Sell, 2.0),
	})

	require.Len(t, book.SellOrders, 3)
	assert.Equal(t, "first", book.SellOrders[0].ID)
	assert.Equal(t, "second", book.SellOrders[1].ID)
	assert.Equal(t, "third", book.SellOrders[2].ID)
}

func TestBuildOrderBookEmpty(t *testing.T) {
	book := BuildOrderBook(nil)
	assert.Empty(t, book.BuyOrders)
	assert.Empty(t, book.SellOrders)
}
