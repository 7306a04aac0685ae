package routes

import (
	"saree-crm/config"
	customerController "saree-crm/controllers/customer"
	dashboardController "saree-crm/controllers/dashboard"
	deliveryController "saree-crm/controllers/delivery"
	followupController "saree-crm/controllers/followup"
	orderController "saree-crm/controllers/order"
	paymentController "saree-crm/controllers/payment"
	reportController "saree-crm/controllers/report"
	"saree-crm/logger"
	"saree-crm/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	asyncLogger := logger.NewAsyncLogger(db)
	go asyncLogger.ProcessLog()
	app.Use(middleware.RequestLogger(asyncLogger))

	dashboards := dashboardController.NewDashboardController(db, cfg)
	customers := customerController.NewCustomerController(db, cfg)
	orders := orderController.NewOrderController(db, cfg)
	payments := paymentController.NewPaymentController(db, cfg)
	deliveries := deliveryController.NewDeliveryController(db, cfg)
	followups := followupController.NewFollowUpController(db, cfg)
	reports := reportController.NewReportController(db, cfg)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})
	app.Get("/dashboard", dashboards.Index)

	/*=============================================================================
	| Customers
	===============================================================================*/
	app.Get("/customers", customers.Index)
	app.Post("/customers", customers.Store)
	app.Get("/customers/:id/edit", customers.Edit)
	app.Post("/customers/:id/edit", customers.Update)
	app.Post("/customers/:id/delete", customers.Delete)

	/*=============================================================================
	| Orders
	===============================================================================*/
	app.Get("/orders", orders.Index)
	app.Post("/orders", orders.Store)
	app.Get("/orders/:id/edit", orders.Edit)
	app.Post("/orders/:id/edit", orders.Update)
	app.Post("/orders/:id/delete", orders.Delete)

	/*=============================================================================
	| Payments & delivery tracking
	===============================================================================*/
	app.Get("/payments", payments.Index)
	app.Get("/delivery", deliveries.Index)

	/*=============================================================================
	| Follow-ups
	===============================================================================*/
	app.Get("/followups", followups.Index)
	app.Post("/followups", followups.Store)
	app.Post("/followups/:id/toggle", followups.Toggle)
	app.Post("/followups/:id/status", followups.UpdateStatus)

	/*=============================================================================
	| Reports, export, settings
	===============================================================================*/
	app.Get("/reports", reports.Index)
	app.Get("/export/csv", reports.ExportCSV)
	app.Get("/settings", reports.Settings)
}
