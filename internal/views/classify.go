// Package views implements the order classification and aggregation pipeline:
// open-order classification, trend coloring, order-book grouping, hourly OHLC
// candles, and the per-view composer that ties them together.
package views

import "dexViews/internal/domain"

// OpenOrders returns every order in all whose id appears in neither filled
// nor cancelled. Ids are compared by their textual representation, so the
// same id arriving through different numeric encodings still matches. The
// result preserves all's order; inputs are never modified.
func OpenOrders(all, filled, cancelled []domain.Order) []domain.Order {
	settled := make(map[string]struct{}, len(filled)+len(cancelled))
	for _, o := range filled {
		settled[o.ID] = struct{}{}
	}
	for _, o := range cancelled {
		settled[o.ID] = struct{}{}
	}

	open := make([]domain.Order, 0, len(all))
	for _, o := range all {
		if _, ok := settled[o.ID]; ok {
			continue
		}
		open = append(open, o)
	}
	return open
}

// SettledAnomalies returns the ids present in both the filled and cancelled
// collections. An order can legitimately be only one of the two; overlap
// means the upstream event feed produced contradictory events and should be
// reported by the layer that owns that feed.
func SettledAnomalies(filled, cancelled []domain.Order) []string {
	filledIDs := make(map[string]struct{}, len(filled))
	for _, o := range filled {
		filledIDs[o.ID] = struct{}{}
	}

	var anomalies []string
	seen := make(map[string]struct{})
	for _, o := range cancelled {
		if _, ok := filledIDs[o.ID]; !ok {
			continue
		}
		if _, dup := seen[o.ID]; dup {
			continue
		}
		seen[o.ID] = struct{}{}
		anomalies = append(anomalies, o.ID)
	}
	return anomalies
}
