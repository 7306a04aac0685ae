package payment

import (
	"saree-crm/config"
	"saree-crm/logger"
	"saree-crm/middleware"
	orderModel "saree-crm/models/order"
	"saree-crm/services/report"
	"saree-crm/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentController serves the payments view
type PaymentController struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPaymentController creates a new payment controller
func NewPaymentController(db *gorm.DB, cfg *config.Config) *PaymentController {
	return &PaymentController{DB: db, Config: cfg}
}

// Index returns the payment totals, the mode donut, the full monthly Paid
// series and the order list, optionally filtered by ?status=Paid|Pending.
func (pc *PaymentController) Index(c *fiber.Ctx) error {
	paidTotal, pendingTotal, err := report.PaymentTotals(pc.DB)
	if err != nil {
		logger.Error("Failed to compute payment totals", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	donut, err := report.PaymentModeBreakdown(pc.DB)
	if err != nil {
		logger.Error("Failed to compute payment-mode breakdown", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	// Full series, no month cap.
	monthly, err := report.MonthlySales(pc.DB, 0)
	if err != nil {
		logger.Error("Failed to compute monthly sales", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	// The label echoes whatever was asked for; only a valid value filters.
	selected := c.Query("status")
	if selected == "" {
		selected = "All"
	}
	query := pc.DB.Model(&orderModel.Order{}).Preload("Customer").
		Order("date DESC, id DESC")
	if status := orderModel.PaymentStatus(selected); status.IsValid() {
		query = query.Where("payment_status = ?", status)
	}

	var items []orderModel.Order
	if err := query.Find(&items).Error; err != nil {
		logger.Error("Failed to list payments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payments",
		Data: fiber.Map{
			"paid_total":      paidTotal,
			"pending_total":   pendingTotal,
			"donut":           donut,
			"monthly_chart":   monthly,
			"items":           items,
			"selected_status": selected,
			"flash":           middleware.PopFlash(c, pc.Config.SessionSecret),
		},
	})
}
