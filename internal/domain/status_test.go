package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CancelDecision(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   CancelDecision
	}{
		{StatusDelivered, CancelClearHistory},
		{StatusPending, CancelWithRefund},
		{StatusInProcess, CancelWithRefund},
		{StatusFoodProcessing, CancelWithRefund},
		{StatusOutForDelivery, CancelRejected},
		{StatusAcceptedByRider, CancelRejected},
		{OrderStatus("Lost"), CancelRejected},
	}

	for _, testCase := range tests {
		t.Run(string(testCase.status), func(t *testing.T) {
			assert.Equal(t, testCase.want, testCase.status.CancelDecision())
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	assert.True(t, StatusFoodProcessing.IsValid())
	assert.True(t, StatusOutForDelivery.IsValid())
	assert.True(t, StatusDelivered.IsValid())

	assert.False(t, StatusPending.IsValid())
	assert.False(t, StatusAcceptedByRider.IsValid())
	assert.False(t, OrderStatus("delivered").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatus_InTransit(t *testing.T) {
	assert.True(t, StatusOutForDelivery.InTransit())
	assert.True(t, StatusAcceptedByRider.InTransit())
	assert.False(t, StatusFoodProcessing.InTransit())
	assert.False(t, StatusDelivered.InTransit())
}
