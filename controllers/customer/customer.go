package customer

import (
	"errors"
	"fmt"
	"strings"

	"saree-crm/config"
	"saree-crm/logger"
	"saree-crm/middleware"
	customerModel "saree-crm/models/customer"
	orderModel "saree-crm/models/order"
	"saree-crm/types"
	customerTypes "saree-crm/types/customer"
	"saree-crm/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CustomerController handles customer-related HTTP requests
type CustomerController struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCustomerController creates a new customer controller
func NewCustomerController(db *gorm.DB, cfg *config.Config) *CustomerController {
	return &CustomerController{DB: db, Config: cfg}
}

// Index lists customers newest-first, optionally filtered by a
// case-insensitive substring over name, city, phone and code.
func (cc *CustomerController) Index(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))

	query := cc.DB.Model(&customerModel.Customer{}).Order("id DESC")
	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		query = query.Where(
			"lower(name) LIKE ? OR lower(city) LIKE ? OR lower(phone) LIKE ? OR lower(code) LIKE ?",
			like, like, like, like,
		)
	}

	var items []customerModel.Customer
	if err := query.Find(&items).Error; err != nil {
		logger.Error("Failed to list customers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Customers",
		Data: fiber.Map{
			"items": items,
			"q":     q,
			"flash": middleware.PopFlash(c, cc.Config.SessionSecret),
		},
	})
}

// Store creates a customer from the submitted form.
func (cc *CustomerController) Store(c *fiber.Ctx) error {
	var req customerTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse customer form", err)
		middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Invalid form submission")
		return c.Redirect("/customers")
	}

	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Name is required")
		return c.Redirect("/customers")
	}

	code := req.Code
	if code == "" {
		code = utils.NewCustomerCode()
	}
	instagram := req.Instagram
	if instagram == "" {
		instagram = "None"
	}

	cust := customerModel.Customer{
		Code:      code,
		Name:      req.Name,
		Instagram: instagram,
		City:      req.City,
		Notes:     req.Notes,
	}
	if req.Phone != "" {
		cust.Phone = &req.Phone
	}

	if err := cc.DB.Create(&cust).Error; err != nil {
		logger.Error("Failed to create customer", err)
		middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Could not save customer")
		return c.Redirect("/customers")
	}

	logger.Success(fmt.Sprintf("Customer created with ID: %d", cust.ID))
	middleware.SetFlash(c, cc.Config.SessionSecret, "success", "Customer saved")
	return c.Redirect("/customers")
}

// Edit returns the edit view model for one customer.
func (cc *CustomerController) Edit(c *fiber.Ctx) error {
	cust, redirect := cc.findCustomer(c)
	if redirect != nil {
		return redirect(c)
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Customer",
		Data: fiber.Map{
			"customer": cust,
			"flash":    middleware.PopFlash(c, cc.Config.SessionSecret),
		},
	})
}

// Update applies the edit form. A phone number, when provided, must be
// unique among the other customers.
func (cc *CustomerController) Update(c *fiber.Ctx) error {
	cust, redirect := cc.findCustomer(c)
	if redirect != nil {
		return redirect(c)
	}

	var req customerTypes.UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse customer form", err)
		middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Invalid form submission")
		return c.Redirect(fmt.Sprintf("/customers/%d/edit", cust.ID))
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if err := req.Validate(); err != nil {
		middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Name is required")
		return c.Redirect(fmt.Sprintf("/customers/%d/edit", cust.ID))
	}

	if req.Phone != "" {
		var conflicts int64
		err := cc.DB.Model(&customerModel.Customer{}).
			Where("phone = ? AND id <> ?", req.Phone, cust.ID).
			Count(&conflicts).Error
		if err != nil {
			logger.Error("Failed to check phone uniqueness", err)
			middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Database error")
			return c.Redirect(fmt.Sprintf("/customers/%d/edit", cust.ID))
		}
		if conflicts > 0 {
			middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Another customer already has this phone number.")
			return c.Redirect(fmt.Sprintf("/customers/%d/edit", cust.ID))
		}
	}

	cust.Name = req.Name
	cust.City = strings.TrimSpace(req.City)
	cust.Notes = strings.TrimSpace(req.Notes)
	if instagram := strings.TrimSpace(req.Instagram); instagram != "" {
		cust.Instagram = instagram
	} else {
		cust.Instagram = "None"
	}
	if req.Phone != "" {
		cust.Phone = &req.Phone
	} else {
		cust.Phone = nil
	}

	if err := cc.DB.Save(cust).Error; err != nil {
		logger.Error("Failed to update customer", err)
		middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Could not update customer")
		return c.Redirect(fmt.Sprintf("/customers/%d/edit", cust.ID))
	}

	middleware.SetFlash(c, cc.Config.SessionSecret, "success", "Customer updated")
	return c.Redirect("/customers")
}

// Delete removes a customer and cascades deletion of their orders.
// Follow-ups referencing the customer are kept.
func (cc *CustomerController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		middleware.SetFlash(c, cc.Config.SessionSecret, "warning", "Customer not found")
		return c.Redirect("/customers")
	}

	var cust customerModel.Customer
	if err := cc.DB.First(&cust, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.SetFlash(c, cc.Config.SessionSecret, "warning", "Customer not found")
			return c.Redirect("/customers")
		}
		logger.Error("Failed to load customer", err)
		middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Database error")
		return c.Redirect("/customers")
	}

	err = cc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", cust.ID).Delete(&orderModel.Order{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cust).Error
	})
	if err != nil {
		logger.Error("Failed to delete customer", err)
		middleware.SetFlash(c, cc.Config.SessionSecret, "danger", "Could not delete customer")
		return c.Redirect("/customers")
	}

	middleware.SetFlash(c, cc.Config.SessionSecret, "info", "Customer deleted")
	return c.Redirect("/customers")
}

// findCustomer resolves the :id param. On a missing customer it returns a
// redirect handler carrying the warning flash.
func (cc *CustomerController) findCustomer(c *fiber.Ctx) (*customerModel.Customer, fiber.Handler) {
	notFound := func(c *fiber.Ctx) error {
		middleware.SetFlash(c, cc.Config.SessionSecret, "warning", "Customer not found")
		return c.Redirect("/customers")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, notFound
	}

	var cust customerModel.Customer
	if err := cc.DB.First(&cust, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to load customer", err)
		}
		return nil, notFound
	}
	return &cust, nil
}
