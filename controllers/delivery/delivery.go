package delivery

import (
	"strings"

	"saree-crm/config"
	"saree-crm/database"
	"saree-crm/logger"
	"saree-crm/middleware"
	deliverylogModel "saree-crm/models/deliverylog"
	orderModel "saree-crm/models/order"
	"saree-crm/services/report"
	"saree-crm/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeliveryController handles the delivery-tracking view
type DeliveryController struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewDeliveryController creates a new delivery controller
func NewDeliveryController(db *gorm.DB, cfg *config.Config) *DeliveryController {
	return &DeliveryController{DB: db, Config: cfg}
}

// Index lists orders through composable delivery filters, with per-status
// KPI counts and the status history of every displayed order.
func (dc *DeliveryController) Index(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	status := c.Query("status")
	ptype := c.Query("ptype")
	courier := c.Query("courier")
	dfrom := c.Query("from")
	dto := c.Query("to")

	query := dc.DB.Model(&orderModel.Order{}).Preload("Customer").
		Order("date DESC, id DESC")

	if s := orderModel.DeliveryStatus(status); s.IsValid() {
		query = query.Where("delivery_status = ?", s)
	}
	if p := orderModel.PurchaseType(ptype); p.IsValid() {
		query = query.Where("purchase = ?", p)
	}
	if courier != "" {
		query = query.Where("courier = ?", courier)
	}
	if q != "" {
		// Lowered on both sides so the match is case-insensitive on every
		// dialect, same as the customer search.
		like := "%" + strings.ToLower(q) + "%"
		query = query.Select("orders.*").
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("lower(orders.order_id) LIKE ? OR lower(orders.tracking_id) LIKE ? OR lower(customers.name) LIKE ?",
				like, like, like)
	}
	shipped := database.DateExpr(dc.DB, "coalesce(shipment_date, date)")
	if dfrom != "" {
		query = query.Where(shipped+" >= ?", dfrom)
	}
	if dto != "" {
		query = query.Where(shipped+" <= ?", dto)
	}

	var items []orderModel.Order
	if err := query.Find(&items).Error; err != nil {
		logger.Error("Failed to list deliveries", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	counts, err := report.DeliveryStatusCounts(dc.DB)
	if err != nil {
		logger.Error("Failed to count delivery statuses", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	kpis := fiber.Map{
		"Pending":   counts[orderModel.DeliveryStatusPending],
		"Packed":    counts[orderModel.DeliveryStatusPacked],
		"Shipped":   counts[orderModel.DeliveryStatusShipped],
		"OFD":       counts[orderModel.DeliveryStatusOutForDelivery],
		"Delivered": counts[orderModel.DeliveryStatusDelivered],
		"Cancelled": counts[orderModel.DeliveryStatusCancelled],
		"Failed":    counts[orderModel.DeliveryStatusFailed],
	}

	logsMap, err := dc.logsForOrders(items)
	if err != nil {
		logger.Error("Failed to load delivery logs", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Deliveries",
		Data: fiber.Map{
			"items":   items,
			"kpis":    kpis,
			"logs":    logsMap,
			"status":  status,
			"ptype":   ptype,
			"q":       q,
			"courier": courier,
			"from":    dfrom,
			"to":      dto,
			"flash":   middleware.PopFlash(c, dc.Config.SessionSecret),
		},
	})
}

// logsForOrders fetches the delivery logs of the displayed orders, grouped
// per order and ordered newest-first within each group.
func (dc *DeliveryController) logsForOrders(items []orderModel.Order) (map[uint][]deliverylogModel.DeliveryLog, error) {
	logsMap := make(map[uint][]deliverylogModel.DeliveryLog)
	if len(items) == 0 {
		return logsMap, nil
	}

	ids := make([]uint, 0, len(items))
	for _, o := range items {
		ids = append(ids, o.ID)
	}

	var logs []deliverylogModel.DeliveryLog
	err := dc.DB.Where("order_id IN ?", ids).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "when"}, Desc: true}).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	for _, entry := range logs {
		logsMap[entry.OrderID] = append(logsMap[entry.OrderID], entry)
	}
	return logsMap, nil
}
