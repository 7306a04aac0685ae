package order

import (
	"errors"
	"fmt"
	"time"

	"saree-crm/config"
	"saree-crm/database"
	"saree-crm/logger"
	"saree-crm/middleware"
	customerModel "saree-crm/models/customer"
	deliverylogModel "saree-crm/models/deliverylog"
	orderModel "saree-crm/models/order"
	"saree-crm/types"
	orderTypes "saree-crm/types/order"
	"saree-crm/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// OrderController handles order-related HTTP requests
type OrderController struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewOrderController creates a new order controller
func NewOrderController(db *gorm.DB, cfg *config.Config) *OrderController {
	return &OrderController{DB: db, Config: cfg}
}

// Index lists orders, optionally filtered by payment status and month,
// newest first.
func (oc *OrderController) Index(c *fiber.Ctx) error {
	pay := c.Query("pay")
	month := c.Query("month")

	query := oc.DB.Model(&orderModel.Order{}).Preload("Customer").
		Order("date DESC, id DESC")
	if status := orderModel.PaymentStatus(pay); status.IsValid() {
		query = query.Where("payment_status = ?", status)
	}
	if month != "" {
		query = query.Where(database.YearMonthExpr(oc.DB, "date")+" = ?", month)
	}

	var items []orderModel.Order
	if err := query.Find(&items).Error; err != nil {
		logger.Error("Failed to list orders", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var customers []customerModel.Customer
	if err := oc.DB.Order("id DESC").Find(&customers).Error; err != nil {
		logger.Error("Failed to list customers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Orders",
		Data: fiber.Map{
			"items":     items,
			"customers": customers,
			"flash":     middleware.PopFlash(c, oc.Config.SessionSecret),
		},
	})
}

// Store creates an order from the submitted form, coercing and defaulting
// field by field.
func (oc *OrderController) Store(c *fiber.Ctx) error {
	var req orderTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse order form", err)
		middleware.SetFlash(c, oc.Config.SessionSecret, "danger", "Invalid form submission")
		return c.Redirect("/orders")
	}

	customerID := utils.SafeInt(req.CustomerID, 0)
	var exists int64
	if err := oc.DB.Model(&customerModel.Customer{}).
		Where("id = ?", customerID).Count(&exists).Error; err != nil {
		logger.Error("Failed to check customer", err)
		middleware.SetFlash(c, oc.Config.SessionSecret, "danger", "Database error")
		return c.Redirect("/orders")
	}
	if exists == 0 {
		middleware.SetFlash(c, oc.Config.SessionSecret, "danger", "Customer not found")
		return c.Redirect("/orders")
	}

	orderID := req.OrderID
	if orderID == "" {
		orderID = utils.NewOrderID()
	}

	date := utils.Today()
	if req.Date != "" {
		if parsed, err := utils.ParseDate(req.Date); err == nil {
			date = parsed
		}
	}

	o := orderModel.Order{
		OrderID:        orderID,
		Date:           date,
		CustomerID:     uint(customerID),
		SareeType:      defaultString(req.SareeType, "Saree"),
		Amount:         utils.SafeAmount(req.Amount, 0),
		Purchase:       orderModel.PurchaseType(defaultString(req.Purchase, string(orderModel.PurchaseOnline))),
		PaymentStatus:  orderModel.PaymentStatus(defaultString(req.PaymentStatus, string(orderModel.PaymentStatusPending))),
		DeliveryStatus: orderModel.DeliveryStatus(defaultString(req.DeliveryStatus, string(orderModel.DeliveryStatusPending))),
		Remarks:        req.Remarks,
	}

	mode := orderModel.PaymentMode(req.PaymentMode)
	if mode == "" {
		if req.PaymentStatus == string(orderModel.PaymentStatusPaid) {
			mode = orderModel.PaymentModeUPI
		} else {
			mode = orderModel.PaymentModePending
		}
	}
	// A pending payment always carries a pending mode, whatever was
	// submitted.
	if o.PaymentStatus == orderModel.PaymentStatusPending {
		mode = orderModel.PaymentModePending
	}
	o.PaymentMode = mode

	if err := oc.DB.Create(&o).Error; err != nil {
		logger.Error("Failed to create order", err)
		middleware.SetFlash(c, oc.Config.SessionSecret, "danger", "Could not save order")
		return c.Redirect("/orders")
	}

	logger.Success(fmt.Sprintf("Order created with ID: %d", o.ID))
	middleware.SetFlash(c, oc.Config.SessionSecret, "success", "Order added")
	return c.Redirect("/orders")
}

// Edit returns the edit view model for one order.
func (oc *OrderController) Edit(c *fiber.Ctx) error {
	o, redirect := oc.findOrder(c)
	if redirect != nil {
		return redirect(c)
	}

	var customers []customerModel.Customer
	if err := oc.DB.Order("name").Find(&customers).Error; err != nil {
		logger.Error("Failed to list customers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Order",
		Data: fiber.Map{
			"order":     o,
			"customers": customers,
			"flash":     middleware.PopFlash(c, oc.Config.SessionSecret),
		},
	})
}

// Update applies the edit form. Empty fields keep the stored value, a
// malformed date silently keeps the old one, and the payment mode is
// forced back to Pending whenever the payment status is Pending. A
// delivery-status change appends a DeliveryLog row.
func (oc *OrderController) Update(c *fiber.Ctx) error {
	o, redirect := oc.findOrder(c)
	if redirect != nil {
		return redirect(c)
	}

	var req orderTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse order form", err)
		middleware.SetFlash(c, oc.Config.SessionSecret, "danger", "Invalid form submission")
		return c.Redirect("/orders")
	}

	if parsed, err := utils.ParseDate(req.Date); err == nil {
		o.Date = parsed
	} // keep old date if parse fails

	o.CustomerID = uint(utils.SafeInt(req.CustomerID, int(o.CustomerID)))
	o.SareeType = defaultString(req.SareeType, o.SareeType)
	o.Amount = utils.SafeAmount(req.Amount, o.Amount)
	o.Purchase = orderModel.PurchaseType(defaultString(req.Purchase, string(o.Purchase)))
	o.PaymentStatus = orderModel.PaymentStatus(defaultString(req.PaymentStatus, string(o.PaymentStatus)))

	// Couple payment mode with status
	mode := orderModel.PaymentMode(defaultString(req.PaymentMode, string(o.PaymentMode)))
	if o.PaymentStatus == orderModel.PaymentStatusPending {
		mode = orderModel.PaymentModePending
	}
	o.PaymentMode = mode

	previousDelivery := o.DeliveryStatus
	o.DeliveryStatus = orderModel.DeliveryStatus(defaultString(req.DeliveryStatus, string(o.DeliveryStatus)))
	o.Remarks = defaultString(req.Remarks, o.Remarks)

	statusChanged := o.DeliveryStatus != previousDelivery
	if statusChanged {
		stamp := time.Now()
		o.LastUpdate = &stamp
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(o).Error; err != nil {
			return err
		}
		if statusChanged {
			entry := deliverylogModel.DeliveryLog{
				OrderID: o.ID,
				When:    time.Now(),
				Status:  o.DeliveryStatus,
			}
			return tx.Create(&entry).Error
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to update order", err)
		middleware.SetFlash(c, oc.Config.SessionSecret, "danger", "Could not update order")
		return c.Redirect("/orders")
	}

	middleware.SetFlash(c, oc.Config.SessionSecret, "success", "Order updated")
	return c.Redirect("/orders")
}

// Delete removes an order; a missing id is a soft warning.
func (oc *OrderController) Delete(c *fiber.Ctx) error {
	o, redirect := oc.findOrder(c)
	if redirect != nil {
		return redirect(c)
	}

	if err := oc.DB.Delete(o).Error; err != nil {
		logger.Error("Failed to delete order", err)
		middleware.SetFlash(c, oc.Config.SessionSecret, "danger", "Could not delete order")
		return c.Redirect("/orders")
	}

	middleware.SetFlash(c, oc.Config.SessionSecret, "info", "Order deleted")
	return c.Redirect("/orders")
}

func (oc *OrderController) findOrder(c *fiber.Ctx) (*orderModel.Order, fiber.Handler) {
	notFound := func(c *fiber.Ctx) error {
		middleware.SetFlash(c, oc.Config.SessionSecret, "warning", "Order not found")
		return c.Redirect("/orders")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, notFound
	}

	var o orderModel.Order
	if err := oc.DB.First(&o, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to load order", err)
		}
		return nil, notFound
	}
	return &o, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
