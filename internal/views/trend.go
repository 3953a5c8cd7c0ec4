package views

import "dexViews/internal/domain"

// ColorTrend marks each order green or red relative to its predecessor's
// price. The input must already be sorted ascending by timestamp; the scan is
// strictly left to right with the previous decorated order carried as the
// accumulator, so reordering the input changes the output. The first order
// compares against itself and is therefore always green.
func ColorTrend(orders []domain.DecoratedOrder) []domain.DecoratedOrder {
	if len(orders) == 0 {
		return nil
	}

	out := make([]domain.DecoratedOrder, 0, len(orders))
	previous := orders[0]
	for _, order := range orders {
		order.TokenPriceClass = priceClass(order, previous)
		out = append(out, order)
		previous = order
	}
	return out
}

func priceClass(order, previous domain.DecoratedOrder) domain.TrendColor {
	if previous.ID == order.ID {
		return domain.TrendGreen
	}
	if previous.TokenPrice <= order.TokenPrice {
		return domain.TrendGreen
	}
	return domain.TrendRed
}
