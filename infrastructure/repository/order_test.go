package repository

import (
	"testing"

	"github.com/lwisniewski/retail-analytics-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrders(n int) []domain.Order {
	orders := make([]domain.Order, n)
	for i := range orders {
		orders[i].OrderID = i + 1
	}
	return orders
}

func TestChunkOrders(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		wantSizes []int
	}{
		{
			name:      "splits evenly",
			total:     6,
			size:      3,
			wantSizes: []int{3, 3},
		},
		{
			name:      "keeps the remainder in a short final batch",
			total:     7,
			size:      3,
			wantSizes: []int{3, 3, 1},
		},
		{
			name:      "one batch when the load fits",
			total:     4,
			size:      1000,
			wantSizes: []int{4},
		},
		{
			name:      "non-positive size loads in a single batch",
			total:     5,
			size:      0,
			wantSizes: []int{5},
		},
		{
			name:      "no batches for an empty load",
			total:     0,
			size:      3,
			wantSizes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := makeOrders(tt.total)

			batches := chunkOrders(orders, tt.size)

			require.Len(t, batches, len(tt.wantSizes))

			next := 1
			for i, batch := range batches {
				assert.Len(t, batch, tt.wantSizes[i])
				for _, o := range batch {
					assert.Equal(t, next, o.OrderID)
					next++
				}
			}
		})
	}
}

func TestNewOrderRepository_DefaultsBatchSize(t *testing.T) {
	repo := NewOrderRepository(nil, 0).(*orderRepository)
	assert.Equal(t, defaultLoadBatchSize, repo.batchSize)

	repo = NewOrderRepository(nil, 250).(*orderRepository)
	assert.Equal(t, 250, repo.batchSize)
}
