package dashboard_test

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

type dashboardView struct {
	Data struct {
		Stats        report.DashboardStats `json:"stats"`
		MonthlyChart []report.MonthBucket  `json:"monthly_chart"`
		TypeChart    []report.TypeBucket   `json:"type_chart"`
	} `json:"data"`
}

func getDashboard(t *testing.T, app *fiber.App) dashboardView {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/dashboard", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dashboardView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRootRedirectsToDashboard(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get(fiber.HeaderLocation))
}

func TestDashboardOnEmptyStore(t *testing.T) {
	app, _ := newTestApp(t)

	body := getDashboard(t, app)
	assert.Zero(t, body.Data.Stats.TotalCustomers)
	assert.Zero(t, body.Data.Stats.TotalSales)
	assert.Empty(t, body.Data.MonthlyChart)
	assert.Empty(t, body.Data.TypeChart)
}

func TestDashboardChartsCapMonthsAndSlices(t *testing.T) {
	app, db := newTestApp(t)

	cust := customerModel.Customer{Code: "CUST000001", Name: "Asha Rao", Instagram: "None"}
	require.NoError(t, db.Create(&cust).Error)

	// Eight paid months; only the latest six chart.
	months := []time.Month{1, 2, 3, 4, 5, 6, 7, 8}
	for i, m := range months {
		o := orderModel.Order{
			OrderID: "ORD-" + string(rune('A'+i)), Date: time.Date(2026, m, 15, 0, 0, 0, 0, time.UTC),
			CustomerID: cust.ID, SareeType: "Banarasi", Amount: 100,
			Purchase:      orderModel.PurchaseOnline,
			PaymentStatus: orderModel.PaymentStatusPaid, PaymentMode: orderModel.PaymentModeUPI,
			DeliveryStatus: orderModel.DeliveryStatusPending,
		}
		require.NoError(t, db.Create(&o).Error)
	}

	body := getDashboard(t, app)
	assert.Equal(t, int64(8), body.Data.Stats.TotalOrders)
	require.Len(t, body.Data.MonthlyChart, 6)
	assert.Equal(t, "2026-03", body.Data.MonthlyChart[0].Month)
	assert.Equal(t, "2026-08", body.Data.MonthlyChart[5].Month)

	require.Len(t, body.Data.TypeChart, 1)
	assert.Equal(t, "Banarasi", body.Data.TypeChart[0].SareeType)
	assert.Equal(t, 8, body.Data.TypeChart[0].Count)
}
