package dashboard

import (
	"saree-crm/config"
	"saree-crm/logger"
	"saree-crm/middleware"
	"saree-crm/services/report"
	"saree-crm/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	monthlyChartMonths = 6
	typeChartSlices    = 12
)

// DashboardController serves the landing view
type DashboardController struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(db *gorm.DB, cfg *config.Config) *DashboardController {
	return &DashboardController{DB: db, Config: cfg}
}

// Index returns the KPI summary cards and the two chart series.
func (dc *DashboardController) Index(c *fiber.Ctx) error {
	stats, err := report.Dashboard(dc.DB)
	if err != nil {
		logger.Error("Failed to compute dashboard stats", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	monthly, err := report.MonthlySales(dc.DB, monthlyChartMonths)
	if err != nil {
		logger.Error("Failed to compute monthly sales", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	distribution, err := report.SareeTypeDistribution(dc.DB, typeChartSlices)
	if err != nil {
		logger.Error("Failed to compute saree-type distribution", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard",
		Data: fiber.Map{
			"stats":         stats,
			"monthly_chart": monthly,
			"type_chart":    distribution,
			"flash":         middleware.PopFlash(c, dc.Config.SessionSecret),
		},
	})
}
