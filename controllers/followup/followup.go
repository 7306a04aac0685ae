package followup

import (
	"errors"
	"fmt"

	"saree-crm/config"
	"saree-crm/logger"
	"saree-crm/middleware"
	customerModel "saree-crm/models/customer"
	followupModel "saree-crm/models/followup"
	"saree-crm/types"
	followupTypes "saree-crm/types/followup"
	"saree-crm/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FollowUpController handles follow-up reminders
type FollowUpController struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFollowUpController creates a new follow-up controller
func NewFollowUpController(db *gorm.DB, cfg *config.Config) *FollowUpController {
	return &FollowUpController{DB: db, Config: cfg}
}

// Index lists follow-ups ordered by due date, soonest first.
func (fc *FollowUpController) Index(c *fiber.Ctx) error {
	var items []followupModel.FollowUp
	if err := fc.DB.Preload("Customer").Order("due_date ASC").Find(&items).Error; err != nil {
		logger.Error("Failed to list follow-ups", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	var customers []customerModel.Customer
	if err := fc.DB.Order("name").Find(&customers).Error; err != nil {
		logger.Error("Failed to list customers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Follow-ups",
		Data: fiber.Map{
			"items":     items,
			"customers": customers,
			"flash":     middleware.PopFlash(c, fc.Config.SessionSecret),
		},
	})
}

// Store creates a follow-up. Unlike order edits, a malformed due date is a
// hard failure here, and the customer must exist.
func (fc *FollowUpController) Store(c *fiber.Ctx) error {
	var req followupTypes.CreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse follow-up form", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid form submission",
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "A valid due date (YYYY-MM-DD) is required",
		})
	}
	dueDate, err := utils.ParseDate(req.DueDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "A valid due date (YYYY-MM-DD) is required",
		})
	}

	customerID := utils.SafeInt(req.CustomerID, 0)
	var exists int64
	if err := fc.DB.Model(&customerModel.Customer{}).
		Where("id = ?", customerID).Count(&exists).Error; err != nil {
		logger.Error("Failed to check customer", err)
		middleware.SetFlash(c, fc.Config.SessionSecret, "danger", "Database error")
		return c.Redirect("/followups")
	}
	if exists == 0 {
		middleware.SetFlash(c, fc.Config.SessionSecret, "danger", "Customer not found")
		return c.Redirect("/followups")
	}

	f := followupModel.FollowUp{
		DueDate:    dueDate,
		CustomerID: uint(customerID),
		Notes:      req.Notes,
		Status:     followupModel.StatusOpen,
	}
	if err := fc.DB.Create(&f).Error; err != nil {
		logger.Error("Failed to create follow-up", err)
		middleware.SetFlash(c, fc.Config.SessionSecret, "danger", "Could not save follow-up")
		return c.Redirect("/followups")
	}

	logger.Success(fmt.Sprintf("Follow-up created with ID: %d", f.ID))
	middleware.SetFlash(c, fc.Config.SessionSecret, "success", "Follow-up added")
	return c.Redirect("/followups")
}

// Toggle flips the legacy two-state status between Open and Done.
func (fc *FollowUpController) Toggle(c *fiber.Ctx) error {
	f, redirect := fc.findFollowUp(c)
	if redirect != nil {
		return redirect(c)
	}

	if f.Status == followupModel.StatusOpen {
		f.Status = followupModel.StatusDone
	} else {
		f.Status = followupModel.StatusOpen
	}

	if err := fc.DB.Save(f).Error; err != nil {
		logger.Error("Failed to toggle follow-up", err)
		middleware.SetFlash(c, fc.Config.SessionSecret, "danger", "Could not update follow-up")
		return c.Redirect("/followups")
	}

	middleware.SetFlash(c, fc.Config.SessionSecret, "info", "Follow-up updated")
	return c.Redirect("/followups")
}

// UpdateStatus sets one of the five workflow statuses. Anything outside the
// set is rejected and the follow-up stays untouched.
func (fc *FollowUpController) UpdateStatus(c *fiber.Ctx) error {
	f, redirect := fc.findFollowUp(c)
	if redirect != nil {
		return redirect(c)
	}

	var req followupTypes.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse status form", err)
		middleware.SetFlash(c, fc.Config.SessionSecret, "danger", "Invalid form submission")
		return c.Redirect("/followups")
	}

	status := followupModel.Status(req.Status)
	if status == "" {
		status = followupModel.StatusOpen
	}
	if !status.IsValid() {
		middleware.SetFlash(c, fc.Config.SessionSecret, "danger", "Invalid status")
		return c.Redirect("/followups")
	}

	f.Status = status
	if err := fc.DB.Save(f).Error; err != nil {
		logger.Error("Failed to update follow-up status", err)
		middleware.SetFlash(c, fc.Config.SessionSecret, "danger", "Could not update follow-up")
		return c.Redirect("/followups")
	}

	middleware.SetFlash(c, fc.Config.SessionSecret, "success", "Follow-up status updated")
	return c.Redirect("/followups")
}

func (fc *FollowUpController) findFollowUp(c *fiber.Ctx) (*followupModel.FollowUp, fiber.Handler) {
	notFound := func(c *fiber.Ctx) error {
		middleware.SetFlash(c, fc.Config.SessionSecret, "warning", "Follow-up not found")
		return c.Redirect("/followups")
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return nil, notFound
	}

	var f followupModel.FollowUp
	if err := fc.DB.First(&f, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to load follow-up", err)
		}
		return nil, notFound
	}
	return &f, nil
}
