package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dexViews/internal/domain"
)

func order(id string, ts int64) domain.Order {
	return domain.Order{ID: id, Timestamp: ts}
}

func ids(orders []domain.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestOpenOrders(t *testing.T) {
	tests := []struct {
		name      string
		all       []domain.Order
		filled    []domain.Order
		cancelled []domain.Order
		want      []string
	}{
		{
			name:      "removes filled and cancelled ids",
			all:       []domain.Order{order("1", 0), order("2", 0), order("3", 0), order("4", 0)},
			filled:    []domain.Order{order("2", 0)},
			cancelled: []domain.Order{order("4", 0)},
			want:      []string{"1", "3"},
		},
		{
			name: "preserves input order",
			all:  []domain.Order{order("9", 0), order("3", 0), order("7", 0)},
			want: []string{"9", "3", "7"},
		},
		{
			name:      "empty all",
			filled:    []domain.Order{order("1", 0)},
			cancelled: []domain.Order{order("2", 0)},
			want:      []string{},
		},
		{
			name:      "id in both filled and cancelled is still excluded",
			all:       []domain.Order{order("1", 0), order("2", 0)},
			filled:    []domain.Order{order("1", 0)},
			cancelled: []domain.Order{order("1", 0)},
			want:      []string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OpenOrders(tt.all, tt.filled, tt.cancelled)
			assert.Equal(t, tt.want, ids(got))
			for _, o := range got {
				for _, f := range tt.filled {
					assert.NotEqual(t, f.ID, o.ID)
				}
				for _, c := range tt.cancelled {
					assert.NotEqual(t, c.ID, o.ID)
				}
			}
		})
	}
}

func TestOpenOrdersDoesNotMutateInputs(t *testing.T) {
	all := []domain.Order{order("1", 5), order("2", 3)}
	filled := []domain.Order{order("2", 3)}

	_ = OpenOrders(all, filled, nil)

	assert.Equal(t, []string{"1", "2"}, ids(all))
	assert.Equal(t, []string{"2"}, ids(filled))
}

func TestSettledAnomalies(t *testing.T) {
	filled := []domain.Order{order("1", 0), order("2", 0), order("3", 0)}
	cancelled := []domain.Order{order("3", 0), order("4", 0), order("3", 0), order("1", 0)}

	got := SettledAnomalies(filled, cancelled)

	assert.Equal(t, []string{"3", "1"}, got)
	assert.Nil(t, SettledAnomalies(filled, nil))
	assert.Nil(t, SettledAnomalies(nil, cancelled))
}
