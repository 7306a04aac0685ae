package report

import (
	"saree-crm/database"
	"saree-crm/models/customer"
	"saree-crm/models/followup"
	"saree-crm/models/order"

	"gorm.io/gorm"
)

// DashboardStats are the summary-card numbers on the dashboard.
type DashboardStats struct {
	TotalCustomers  int64 `json:"total_customers"`
	TotalOrders     int64 `json:"total_orders"`
	TotalSales      int   `json:"total_sales"`
	AvgOrder        int   `json:"avg_order"`
	PendingPayments int64 `json:"pending_payments"`
	PendingDelivery int64 `json:"pending_delivery"`
	OpenFollowUps   int64 `json:"pending_followups"`
}

// MonthBucket is one point of a monthly amount series.
type MonthBucket struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

// TypeBucket is one slice of the saree-type distribution.
type TypeBucket struct {
	SareeType string `json:"saree_type"`
	Count     int    `json:"count"`
}

// ModeBucket is one slice of the payment-mode donut.
type ModeBucket struct {
	Mode  string `json:"mode"`
	Total int    `json:"total"`
}

// Dashboard computes the seven dashboard KPIs.
func Dashboard(db *gorm.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := db.Model(&customer.Customer{}).Count(&stats.TotalCustomers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&order.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	if err := db.Raw(
		"SELECT COALESCE(SUM(CASE WHEN payment_status = ? THEN amount ELSE 0 END), 0) FROM orders",
		order.PaymentStatusPaid,
	).Scan(&stats.TotalSales).Error; err != nil {
		return nil, err
	}

	var avg float64
	if err := db.Raw("SELECT COALESCE(AVG(amount), 0) FROM orders").Scan(&avg).Error; err != nil {
		return nil, err
	}
	stats.AvgOrder = int(avg)

	if err := db.Model(&order.Order{}).
		Where("payment_status = ?", order.PaymentStatusPending).
		Count(&stats.PendingPayments).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&order.Order{}).
		Where("delivery_status = ?", order.DeliveryStatusPending).
		Count(&stats.PendingDelivery).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&followup.FollowUp{}).
		Where("status = ?", followup.StatusOpen).
		Count(&stats.OpenFollowUps).Error; err != nil {
		return nil, err
	}

	return stats, nil
}

// MonthlySales sums Paid amounts per year-month in chronological order.
// A positive limit keeps only the most recent buckets.
func MonthlySales(db *gorm.DB, limit int) ([]MonthBucket, error) {
	ym := database.YearMonthExpr(db, "date")
	var rows []MonthBucket

	if limit > 0 {
		// Most recent buckets first, then flipped to chronological order
		// for charting.
		err := db.Raw(
			"SELECT "+ym+" AS month, SUM(amount) AS total FROM orders"+
				" WHERE payment_status = ? GROUP BY month ORDER BY month DESC LIMIT ?",
			order.PaymentStatusPaid, limit,
		).Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
		return rows, nil
	}

	err := db.Raw(
		"SELECT "+ym+" AS month, SUM(amount) AS total FROM orders"+
			" WHERE payment_status = ? GROUP BY month ORDER BY month ASC",
		order.PaymentStatusPaid,
	).Scan(&rows).Error
	return rows, err
}

// SareeTypeDistribution counts orders per saree type, biggest first.
func SareeTypeDistribution(db *gorm.DB, limit int) ([]TypeBucket, error) {
	var rows []TypeBucket
	err := db.Raw(
		"SELECT saree_type, COUNT(*) AS count FROM orders"+
			" GROUP BY saree_type ORDER BY count DESC LIMIT ?",
		limit,
	).Scan(&rows).Error
	return rows, err
}

// PaymentTotals returns the Paid and Pending amount totals.
func PaymentTotals(db *gorm.DB) (paid int, pending int, err error) {
	if err = db.Raw(
		"SELECT COALESCE(SUM(amount), 0) FROM orders WHERE payment_status = ?",
		order.PaymentStatusPaid,
	).Scan(&paid).Error; err != nil {
		return 0, 0, err
	}
	if err = db.Raw(
		"SELECT COALESCE(SUM(amount), 0) FROM orders WHERE payment_status = ?",
		order.PaymentStatusPending,
	).Scan(&pending).Error; err != nil {
		return 0, 0, err
	}
	return paid, pending, nil
}

// PaymentModeBreakdown buckets amounts by payment mode. Every Pending
// order lands in a single "Pending" bucket regardless of its stored mode;
// Paid orders break out by their actual mode.
func PaymentModeBreakdown(db *gorm.DB) ([]ModeBucket, error) {
	var rows []ModeBucket
	err := db.Raw(
		"SELECT CASE WHEN payment_status = ? THEN ? ELSE payment_mode END AS mode,"+
			" SUM(amount) AS total FROM orders"+
			" WHERE payment_status IN (?, ?)"+
			" GROUP BY mode ORDER BY total DESC",
		order.PaymentStatusPending, order.PaymentModePending,
		order.PaymentStatusPaid, order.PaymentStatusPending,
	).Scan(&rows).Error
	return rows, err
}

// DeliveryStatusCounts counts orders per delivery status in one grouped
// query. Statuses with no orders report zero.
func DeliveryStatusCounts(db *gorm.DB) (map[order.DeliveryStatus]int64, error) {
	var rows []struct {
		Status order.DeliveryStatus
		Count  int64
	}
	err := db.Raw(
		"SELECT delivery_status AS status, COUNT(*) AS count FROM orders GROUP BY delivery_status",
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[order.DeliveryStatus]int64, len(order.AllDeliveryStatuses()))
	for _, s := range order.AllDeliveryStatuses() {
		counts[s] = 0
	}
	for _, row := range rows {
		if row.Status.IsValid() {
			counts[row.Status] = row.Count
		}
	}
	return counts, nil
}
