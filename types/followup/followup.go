package followup

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateRequest carries the follow-up creation form. DueDate is required
// and strictly YYYY-MM-DD; a malformed value is a hard failure.
type CreateRequest struct {
	DueDate    string `form:"due_date" json:"due_date" validate:"required,datetime=2006-01-02"`
	CustomerID string `form:"customer_id" json:"customer_id"`
	Notes      string `form:"notes" json:"notes"`
}

func (r CreateRequest) Validate() error {
	return validate.Struct(r)
}

// StatusRequest carries the follow-up status-update form.
type StatusRequest struct {
	Status string `form:"status" json:"status"`
}
