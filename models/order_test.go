package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionOrderStatus(t *testing.T) {
	allowed := [][2]string{
		{OrderStatusPendingPayment, OrderStatusPaymentSubmitted},
		{OrderStatusPendingPayment, OrderStatusCancelled},
		{OrderStatusPaymentSubmitted, OrderStatusPaymentApproved},
		{OrderStatusPaymentSubmitted, OrderStatusPendingPayment},
		{OrderStatusPaymentApproved, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransitionOrderStatus(tc[0], tc[1]), "%s -> %s should be allowed", tc[0], tc[1])
	}

	denied := [][2]string{
		{OrderStatusPendingPayment, OrderStatusShipped},
		{OrderStatusPendingPayment, OrderStatusDelivered},
		{OrderStatusPaymentApproved, OrderStatusPendingPayment},
		{OrderStatusShipped, OrderStatusCancelled},
		{OrderStatusDelivered, OrderStatusShipped},
		{OrderStatusCancelled, OrderStatusPendingPayment},
		{"bogus", OrderStatusShipped},
	}
	for _, tc := range denied {
		assert.False(t, CanTransitionOrderStatus(tc[0], tc[1]), "%s -> %s should be denied", tc[0], tc[1])
	}
}

// A receipt review writes payment_approved or pending_payment onto the order.
// Both writes must be rejected once the order left payment_submitted, so a
// cancelled or finished order can never be pulled back by a late review.
func TestReviewOutcomesRequirePaymentSubmitted(t *testing.T) {
	reviewOutcomes := []string{OrderStatusPaymentApproved, OrderStatusPendingPayment}

	for _, outcome := range reviewOutcomes {
		assert.True(t, CanTransitionOrderStatus(OrderStatusPaymentSubmitted, outcome),
			"payment_submitted -> %s should be allowed", outcome)

		for _, from := range []string{
			OrderStatusCancelled,
			OrderStatusDelivered,
			OrderStatusShipped,
			OrderStatusPendingPayment,
		} {
			assert.False(t, CanTransitionOrderStatus(from, outcome),
				"%s -> %s should be denied", from, outcome)
		}
	}
}

func TestBuildOrderTimeline(t *testing.T) {
	created := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	shipped := created.Add(48 * time.Hour)

	t.Run("shipped order marks earlier steps complete", func(t *testing.T) {
		submitted := created.Add(2 * time.Hour)
		reviewed := created.Add(5 * time.Hour)
		order := &Order{Status: OrderStatusShipped, CreatedAt: created, ShippedAt: &shipped}
		payment := &Payment{CreatedAt: submitted, ReviewedAt: &reviewed}

		timeline := BuildOrderTimeline(order, payment)
		require.Len(t, timeline, 5)

		assert.Equal(t, OrderStatusPendingPayment, timeline[0].Status)
		for i := 0; i < 4; i++ {
			assert.True(t, timeline[i].IsComplete, "step %d should be complete", i)
		}
		assert.False(t, timeline[4].IsComplete)
		assert.Equal(t, &submitted, timeline[1].ReachedAt)
		assert.Equal(t, &reviewed, timeline[2].ReachedAt)
		assert.Equal(t, &shipped, timeline[3].ReachedAt)
		assert.Nil(t, timeline[4].ReachedAt)
	})

	t.Run("fresh order only has the first step complete", func(t *testing.T) {
		order := &Order{Status: OrderStatusPendingPayment, CreatedAt: created}

		timeline := BuildOrderTimeline(order, nil)
		require.Len(t, timeline, 5)
		assert.True(t, timeline[0].IsComplete)
		for i := 1; i < 5; i++ {
			assert.False(t, timeline[i].IsComplete)
			assert.Nil(t, timeline[i].ReachedAt)
		}
	})

	t.Run("cancelled order collapses to two steps", func(t *testing.T) {
		cancelledAt := created.Add(time.Hour)
		order := &Order{Status: OrderStatusCancelled, CreatedAt: created, UpdatedAt: cancelledAt}

		timeline := BuildOrderTimeline(order, nil)
		require.Len(t, timeline, 2)
		assert.Equal(t, OrderStatusCancelled, timeline[1].Status)
		assert.True(t, timeline[1].IsComplete)
		assert.Equal(t, &cancelledAt, timeline[1].ReachedAt)
	})
}
