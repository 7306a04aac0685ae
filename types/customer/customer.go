package customer

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateRequest carries the customer creation form.
type CreateRequest struct {
	Name      string `form:"name" json:"name" validate:"required"`
	Code      string `form:"code" json:"code" validate:"omitempty,max=20"`
	Instagram string `form:"instagram" json:"instagram" validate:"omitempty,max=120"`
	Phone     string `form:"phone" json:"phone" validate:"omitempty,max=20"`
	City      string `form:"city" json:"city" validate:"omitempty,max=120"`
	Notes     string `form:"notes" json:"notes"`
}

func (r CreateRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateRequest carries the customer edit form.
type UpdateRequest struct {
	Name      string `form:"name" json:"name" validate:"required"`
	Instagram string `form:"instagram" json:"instagram" validate:"omitempty,max=120"`
	Phone     string `form:"phone" json:"phone" validate:"omitempty,max=20"`
	City      string `form:"city" json:"city" validate:"omitempty,max=120"`
	Notes     string `form:"notes" json:"notes"`
}

func (r UpdateRequest) Validate() error {
	return validate.Struct(r)
}
