package order

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending:
		return true
	default:
		return false
	}
}

type PaymentMode string

const (
	PaymentModeUPI     PaymentMode = "UPI"
	PaymentModeCash    PaymentMode = "Cash"
	PaymentModePending PaymentMode = "Pending"
)

func (m PaymentMode) String() string {
	return string(m)
}

func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeUPI, PaymentModeCash, PaymentModePending:
		return true
	default:
		return false
	}
}

type PurchaseType string

const (
	PurchaseOnline  PurchaseType = "Online"
	PurchaseOffline PurchaseType = "Offline"
)

func (p PurchaseType) String() string {
	return string(p)
}

func (p PurchaseType) IsValid() bool {
	return p == PurchaseOnline || p == PurchaseOffline
}

type DeliveryStatus string

const (
	DeliveryStatusPending        DeliveryStatus = "Pending"
	DeliveryStatusPacked         DeliveryStatus = "Packed"
	DeliveryStatusShipped        DeliveryStatus = "Shipped"
	DeliveryStatusOutForDelivery DeliveryStatus = "Out for Delivery"
	DeliveryStatusDelivered      DeliveryStatus = "Delivered"
	DeliveryStatusCancelled      DeliveryStatus = "Cancelled"
	DeliveryStatusFailed         DeliveryStatus = "Failed"
)

func (d DeliveryStatus) String() string {
	return string(d)
}

func (d DeliveryStatus) IsValid() bool {
	switch d {
	case DeliveryStatusPending, DeliveryStatusPacked, DeliveryStatusShipped,
		DeliveryStatusOutForDelivery, DeliveryStatusDelivered,
		DeliveryStatusCancelled, DeliveryStatusFailed:
		return true
	default:
		return false
	}
}

// AllDeliveryStatuses returns every valid delivery status in display order.
func AllDeliveryStatuses() []DeliveryStatus {
	return []DeliveryStatus{
		DeliveryStatusPending,
		DeliveryStatusPacked,
		DeliveryStatusShipped,
		DeliveryStatusOutForDelivery,
		DeliveryStatusDelivered,
		DeliveryStatusCancelled,
		DeliveryStatusFailed,
	}
}
