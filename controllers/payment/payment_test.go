package payment_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"saree-crm/config"
	customerModel "saree-crm/models/customer"
	deliverylogModel "saree-crm/models/deliverylog"
	followupModel "saree-crm/models/followup"
	logModel "saree-crm/models/log"
	orderModel "saree-crm/models/order"
	"saree-crm/routes"
	"saree-crm/services/report"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	app := fiber.New()
	routes.SetupRoutes(app, db, &config.Config{SessionSecret: "test-secret"})
	return app, db
}

type paymentView struct {
	Data struct {
		PaidTotal      int                  `json:"paid_total"`
		PendingTotal   int                  `json:"pending_total"`
		Donut          []report.ModeBucket  `json:"donut"`
		MonthlyChart   []report.MonthBucket `json:"monthly_chart"`
		Items          []orderModel.Order   `json:"items"`
		SelectedStatus string               `json:"selected_status"`
	} `json:"data"`
}

func getPayments(t *testing.T, app *fiber.App, path string) paymentView {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body paymentView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func seedPayments(t *testing.T, db *gorm.DB) {
	t.Helper()
	cust := customerModel.Customer{Code: "CUST000001", Name: "Asha Rao", Instagram: "None"}
	require.NoError(t, db.Create(&cust).Error)

	mk := func(id string, date time.Time, amount int, pay orderModel.PaymentStatus, mode orderModel.PaymentMode) {
		o := orderModel.Order{
			OrderID: id, Date: date, CustomerID: cust.ID, SareeType: "Banarasi",
			Amount: amount, Purchase: orderModel.PurchaseOnline,
			PaymentStatus: pay, PaymentMode: mode,
			DeliveryStatus: orderModel.DeliveryStatusPending,
		}
		require.NoError(t, db.Create(&o).Error)
	}
	mk("ORD-1", time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), 1000, orderModel.PaymentStatusPaid, orderModel.PaymentModeUPI)
	mk("ORD-2", time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC), 500, orderModel.PaymentStatusPaid, orderModel.PaymentModeCash)
	mk("ORD-3", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), 300, orderModel.PaymentStatusPending, orderModel.PaymentModeCash)
}

func TestIndexTotalsAndDonut(t *testing.T) {
	app, db := newTestApp(t)
	seedPayments(t, db)

	body := getPayments(t, app, "/payments")
	assert.Equal(t, 1500, body.Data.PaidTotal)
	assert.Equal(t, 300, body.Data.PendingTotal)
	assert.Equal(t, "All", body.Data.SelectedStatus)
	assert.Len(t, body.Data.Items, 3)

	require.Len(t, body.Data.Donut, 3)
	assert.Equal(t, "UPI", body.Data.Donut[0].Mode, "biggest bucket first")
	totals := map[string]int{}
	for _, b := range body.Data.Donut {
		totals[b.Mode] = b.Total
	}
	assert.Equal(t, 300, totals["Pending"], "pending orders bucket together regardless of stored mode")
}

func TestIndexMonthlyChartIsFullAscendingSeries(t *testing.T) {
	app, db := newTestApp(t)
	seedPayments(t, db)

	body := getPayments(t, app, "/payments")
	require.Len(t, body.Data.MonthlyChart, 2, "pending months never chart")
	assert.Equal(t, "2026-06", body.Data.MonthlyChart[0].Month)
	assert.Equal(t, "2026-07", body.Data.MonthlyChart[1].Month)
}

func TestIndexStatusFilter(t *testing.T) {
	app, db := newTestApp(t)
	seedPayments(t, db)

	body := getPayments(t, app, "/payments?status=Pending")
	assert.Equal(t, "Pending", body.Data.SelectedStatus)
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "ORD-3", body.Data.Items[0].OrderID)

	// Totals stay global even when the list is filtered.
	assert.Equal(t, 1500, body.Data.PaidTotal)

	// An unknown value does not filter, but the label still echoes it.
	body = getPayments(t, app, "/payments?status=Refunded")
	assert.Equal(t, "Refunded", body.Data.SelectedStatus)
	assert.Len(t, body.Data.Items, 3)
}
