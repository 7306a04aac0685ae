package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"saree-crm/config"
	"saree-crm/logger"
	"saree-crm/middleware"
	customerModel "saree-crm/models/customer"
	orderModel "saree-crm/models/order"
	reportService "saree-crm/services/report"
	"saree-crm/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportController serves the reports snapshot, the CSV export and the
// settings view.
type ReportController struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportController creates a new report controller
func NewReportController(db *gorm.DB, cfg *config.Config) *ReportController {
	return &ReportController{DB: db, Config: cfg}
}

// Index returns the static KPI snapshot.
func (rc *ReportController) Index(c *fiber.Ctx) error {
	stats, err := reportService.Dashboard(rc.DB)
	if err != nil {
		logger.Error("Failed to compute report KPIs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	paidTotal, pendingTotal, err := reportService.PaymentTotals(rc.DB)
	if err != nil {
		logger.Error("Failed to compute payment totals", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Reports",
		Data: fiber.Map{
			"kpis": fiber.Map{
				"total_customers": stats.TotalCustomers,
				"total_orders":    stats.TotalOrders,
				"paid_revenue":    paidTotal,
				"pending_amount":  pendingTotal,
			},
			"flash": middleware.PopFlash(c, rc.Config.SessionSecret),
		},
	})
}

// ExportCSV streams the selected table as a CSV download. Anything other
// than "customers" exports orders.
func (rc *ReportController) ExportCSV(c *fiber.Ctx) error {
	table := c.Query("table", "orders")

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if table == "customers" {
		if err := rc.writeCustomers(writer); err != nil {
			logger.Error("Failed to export customers", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Export failed",
			})
		}
	} else {
		table = "orders"
		if err := rc.writeOrders(writer); err != nil {
			logger.Error("Failed to export orders", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Export failed",
			})
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.Error("Failed to flush CSV", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Export failed",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+table+`.csv"`)
	return c.Send(buf.Bytes())
}

func (rc *ReportController) writeCustomers(writer *csv.Writer) error {
	if err := writer.Write([]string{"ID", "Code", "Name", "Instagram", "Phone", "City", "Notes", "Created"}); err != nil {
		return err
	}

	var customers []customerModel.Customer
	if err := rc.DB.Order("id ASC").Find(&customers).Error; err != nil {
		return err
	}
	for _, cust := range customers {
		phone := ""
		if cust.Phone != nil {
			phone = *cust.Phone
		}
		row := []string{
			strconv.FormatUint(uint64(cust.ID), 10),
			cust.Code,
			cust.Name,
			cust.Instagram,
			phone,
			cust.City,
			cust.Notes,
			cust.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func (rc *ReportController) writeOrders(writer *csv.Writer) error {
	header := []string{
		"ID", "OrderID", "Date", "CustomerCode", "CustomerName", "SareeType",
		"Amount", "Purchase", "PaymentStatus", "PaymentMode", "DeliveryStatus", "Remarks",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	var orders []orderModel.Order
	if err := rc.DB.Preload("Customer").Order("id ASC").Find(&orders).Error; err != nil {
		return err
	}
	for _, o := range orders {
		row := []string{
			strconv.FormatUint(uint64(o.ID), 10),
			o.OrderID,
			o.Date.Format("2006-01-02"),
			o.Customer.Code,
			o.Customer.Name,
			o.SareeType,
			strconv.Itoa(o.Amount),
			o.Purchase.String(),
			o.PaymentStatus.String(),
			o.PaymentMode.String(),
			o.DeliveryStatus.String(),
			o.Remarks,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Settings is a read-only display of the configured paths.
func (rc *ReportController) Settings(c *fiber.Ctx) error {
	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Settings",
		Data: fiber.Map{
			"db_path":    rc.Config.StorePath(),
			"log_file":   rc.Config.LogFile,
			"backup_dir": rc.Config.BackupDir,
			"flash":      middleware.PopFlash(c, rc.Config.SessionSecret),
		},
	})
}
