package views

import (
	"sort"

	"dexViews/internal/domain"
)

// BuildOrderBook partitions decorated open orders by side and sorts each side
// descending by token price. Sorting is stable, so orders at the same price
// keep their original relative order. Buy/Sell and BuyOrders/SellOrders alias
// the same sorted slices; the duplicate names exist for consumers written
// against either convention.
func BuildOrderBook(orders []domain.DecoratedOrder) domain.OrderBook {
	var buy, sell []domain.DecoratedOrder
	for _, o := range orders {
		if o.OrderType == domain.Buy {
			buy = append(buy, o)
		} else {
			sell = append(sell, o)
		}
	}

	sortByPriceDesc(buy)
	sortByPriceDesc(sell)

	return domain.OrderBook{
		Buy:        buy,
		Sell:       sell,
		BuyOrders:  buy,
		SellOrders: sell,
	}
}

func sortByPriceDesc(orders []domain.DecoratedOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].TokenPrice > orders[j].TokenPrice
	})
}
