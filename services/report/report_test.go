package report_test

import (
	"fmt"
	"testing"
	"time"

	customerModel "saree-crm/models/customer"
	deliverylogModel "saree-crm/models/deliverylog"
	followupModel "saree-crm/models/followup"
	logModel "saree-crm/models/log"
	orderModel "saree-crm/models/order"
	"saree-crm/services/report"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&customerModel.Customer{},
		&orderModel.Order{},
		&followupModel.FollowUp{},
		&deliverylogModel.DeliveryLog{},
		&logModel.Log{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, code, name string) customerModel.Customer {
	t.Helper()
	cust := customerModel.Customer{Code: code, Name: name, Instagram: "None"}
	require.NoError(t, db.Create(&cust).Error)
	return cust
}

func seedOrder(t *testing.T, db *gorm.DB, customerID uint, orderID string, date time.Time, amount int, pay orderModel.PaymentStatus, mode orderModel.PaymentMode, delivery orderModel.DeliveryStatus) orderModel.Order {
	t.Helper()
	o := orderModel.Order{
		OrderID:        orderID,
		Date:           date,
		CustomerID:     customerID,
		SareeType:      "Banarasi",
		Amount:         amount,
		Purchase:       orderModel.PurchaseOnline,
		PaymentStatus:  pay,
		PaymentMode:    mode,
		DeliveryStatus: delivery,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestDashboard(t *testing.T) {
	db := newTestDB(t)
	cust := seedCustomer(t, db, "CUST000001", "Asha Rao")
	seedCustomer(t, db, "CUST000002", "Binita Shah")

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	seedOrder(t, db, cust.ID, "ORD-1", day, 1000, orderModel.PaymentStatusPaid, orderModel.PaymentModeUPI, orderModel.DeliveryStatusDelivered)
	seedOrder(t, db, cust.ID, "ORD-2", day, 500, orderModel.PaymentStatusPaid, orderModel.PaymentModeCash, orderModel.DeliveryStatusPending)
	seedOrder(t, db, cust.ID, "ORD-3", day, 300, orderModel.PaymentStatusPending, orderModel.PaymentModePending, orderModel.DeliveryStatusPending)

	require.NoError(t, db.Create(&followupModel.FollowUp{DueDate: day, CustomerID: cust.ID, Status: followupModel.StatusOpen}).Error)
	require.NoError(t, db.Create(&followupModel.FollowUp{DueDate: day, CustomerID: cust.ID, Status: followupModel.StatusDone}).Error)

	stats, err := report.Dashboard(db)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalCustomers)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, 1500, stats.TotalSales, "only Paid orders count toward sales")
	assert.Equal(t, 600, stats.AvgOrder)
	assert.Equal(t, int64(1), stats.PendingPayments)
	assert.Equal(t, int64(2), stats.PendingDelivery)
	assert.Equal(t, int64(1), stats.OpenFollowUps)
}

func TestDashboardEmptyStore(t *testing.T) {
	db := newTestDB(t)

	stats, err := report.Dashboard(db)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalCustomers)
	assert.Zero(t, stats.TotalSales)
	assert.Zero(t, stats.AvgOrder)
}

func TestMonthlySalesCapsToMostRecent(t *testing.T) {
	db := newTestDB(t)
	cust := seedCustomer(t, db, "CUST000001", "Asha Rao")

	for m := 1; m <= 8; m++ {
		date := time.Date(2026, time.Month(m), 15, 0, 0, 0, 0, time.UTC)
		seedOrder(t, db, cust.ID, orderID(m), date, m*100, orderModel.PaymentStatusPaid, orderModel.PaymentModeUPI, orderModel.DeliveryStatusDelivered)
	}
	// Pending revenue never enters the series.
	seedOrder(t, db, cust.ID, "ORD-PEND", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), 9999, orderModel.PaymentStatusPending, orderModel.PaymentModePending, orderModel.DeliveryStatusPending)

	rows, err := report.MonthlySales(db, 6)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, "2026-03", rows[0].Month)
	assert.Equal(t, "2026-08", rows[5].Month)
	assert.Equal(t, 300, rows[0].Total)
	assert.Equal(t, 800, rows[5].Total)
}

func TestMonthlySalesFullSeries(t *testing.T) {
	db := newTestDB(t)
	cust := seedCustomer(t, db, "CUST000001", "Asha Rao")

	for m := 1; m <= 8; m++ {
		date := time.Date(2026, time.Month(m), 15, 0, 0, 0, 0, time.UTC)
		seedOrder(t, db, cust.ID, orderID(m), date, m*100, orderModel.PaymentStatusPaid, orderModel.PaymentModeUPI, orderModel.DeliveryStatusDelivered)
	}

	rows, err := report.MonthlySales(db, 0)
	require.NoError(t, err)
	require.Len(t, rows, 8)

	assert.Equal(t, "2026-01", rows[0].Month)
	assert.Equal(t, "2026-08", rows[7].Month)
}

func TestSareeTypeDistribution(t *testing.T) {
	db := newTestDB(t)
	cust := seedCustomer(t, db, "CUST000001", "Asha Rao")
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	types := []string{"Banarasi", "Banarasi", "Banarasi", "Silk"}
	for i, st := range types {
		o := orderModel.Order{
			OrderID:        orderID(100 + i),
			Date:           day,
			CustomerID:     cust.ID,
			SareeType:      st,
			Amount:         100,
			Purchase:       orderModel.PurchaseOnline,
			PaymentStatus:  orderModel.PaymentStatusPaid,
			PaymentMode:    orderModel.PaymentModeUPI,
			DeliveryStatus: orderModel.DeliveryStatusPending,
		}
		require.NoError(t, db.Create(&o).Error)
	}

	rows, err := report.SareeTypeDistribution(db, 12)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Banarasi", rows[0].SareeType)
	assert.Equal(t, 3, rows[0].Count)

	capped, err := report.SareeTypeDistribution(db, 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, "Banarasi", capped[0].SareeType)
}

func TestPaymentTotals(t *testing.T) {
	db := newTestDB(t)
	cust := seedCustomer(t, db, "CUST000001", "Asha Rao")
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, cust.ID, "ORD-1", day, 1000, orderModel.PaymentStatusPaid, orderModel.PaymentModeUPI, orderModel.DeliveryStatusPending)
	seedOrder(t, db, cust.ID, "ORD-2", day, 500, orderModel.PaymentStatusPaid, orderModel.PaymentModeCash, orderModel.DeliveryStatusPending)
	seedOrder(t, db, cust.ID, "ORD-3", day, 300, orderModel.PaymentStatusPending, orderModel.PaymentModePending, orderModel.DeliveryStatusPending)

	paid, pending, err := report.PaymentTotals(db)
	require.NoError(t, err)
	assert.Equal(t, 1500, paid)
	assert.Equal(t, 300, pending)
}

func TestPaymentModeBreakdownBucketsPending(t *testing.T) {
	db := newTestDB(t)
	cust := seedCustomer(t, db, "CUST000001", "Asha Rao")
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, cust.ID, "ORD-1", day, 1000, orderModel.PaymentStatusPaid, orderModel.PaymentModeUPI, orderModel.DeliveryStatusPending)
	seedOrder(t, db, cust.ID, "ORD-2", day, 500, orderModel.PaymentStatusPaid, orderModel.PaymentModeCash, orderModel.DeliveryStatusPending)
	// A pending order with a stale stored mode still lands in the Pending
	// bucket.
	seedOrder(t, db, cust.ID, "ORD-3", day, 300, orderModel.PaymentStatusPending, orderModel.PaymentModeCash, orderModel.DeliveryStatusPending)

	rows, err := report.PaymentModeBreakdown(db)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.Mode] = row.Total
	}
	assert.Equal(t, 1000, totals["UPI"])
	assert.Equal(t, 500, totals["Cash"])
	assert.Equal(t, 300, totals["Pending"])

	// Biggest bucket first.
	assert.Equal(t, "UPI", rows[0].Mode)
}

func TestDeliveryStatusCountsZeroFills(t *testing.T) {
	db := newTestDB(t)
	cust := seedCustomer(t, db, "CUST000001", "Asha Rao")
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	seedOrder(t, db, cust.ID, "ORD-1", day, 100, orderModel.PaymentStatusPaid, orderModel.PaymentModeUPI, orderModel.DeliveryStatusDelivered)
	seedOrder(t, db, cust.ID, "ORD-2", day, 100, orderModel.PaymentStatusPaid, orderModel.PaymentModeUPI, orderModel.DeliveryStatusDelivered)
	seedOrder(t, db, cust.ID, "ORD-3", day, 100, orderModel.PaymentStatusPending, orderModel.PaymentModePending, orderModel.DeliveryStatusShipped)

	counts, err := report.DeliveryStatusCounts(db)
	require.NoError(t, err)
	require.Len(t, counts, 7)

	assert.Equal(t, int64(2), counts[orderModel.DeliveryStatusDelivered])
	assert.Equal(t, int64(1), counts[orderModel.DeliveryStatusShipped])
	assert.Equal(t, int64(0), counts[orderModel.DeliveryStatusPending])
	assert.Equal(t, int64(0), counts[orderModel.DeliveryStatusOutForDelivery])
	assert.Equal(t, int64(0), counts[orderModel.DeliveryStatusFailed])
}

func orderID(n int) string {
	return fmt.Sprintf("ORD-SEED-%04d", n)
}
