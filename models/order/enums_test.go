package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusIsValid(t *testing.T) {
	assert.True(t, PaymentStatusPaid.IsValid())
	assert.True(t, PaymentStatusPending.IsValid())
	assert.False(t, PaymentStatus("Refunded").IsValid())
	assert.False(t, PaymentStatus("").IsValid())
}

func TestPaymentModeIsValid(t *testing.T) {
	assert.True(t, PaymentModeUPI.IsValid())
	assert.True(t, PaymentModeCash.IsValid())
	assert.True(t, PaymentModePending.IsValid())
	assert.False(t, PaymentMode("Card").IsValid())
}

func TestDeliveryStatusSet(t *testing.T) {
	all := AllDeliveryStatuses()
	assert.Len(t, all, 7)
	for _, s := range all {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, DeliveryStatus("Lost").IsValid())
	assert.False(t, DeliveryStatus("delivered").IsValid(), "statuses are case-sensitive")
}

func TestPurchaseTypeIsValid(t *testing.T) {
	assert.True(t, PurchaseOnline.IsValid())
	assert.True(t, PurchaseOffline.IsValid())
	assert.False(t, PurchaseType("Phone").IsValid())
}
