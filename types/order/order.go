package order

// CreateRequest carries the order creation form. Everything arrives as a
// string; the handler coerces and defaults field by field.
type CreateRequest struct {
	OrderID        string `form:"order_id" json:"order_id"`
	Date           string `form:"date" json:"date"`
	CustomerID     string `form:"customer_id" json:"customer_id"`
	SareeType      string `form:"saree_type" json:"saree_type"`
	Amount         string `form:"amount" json:"amount"`
	Purchase       string `form:"purchase" json:"purchase"`
	PaymentStatus  string `form:"payment_status" json:"payment_status"`
	PaymentMode    string `form:"payment_mode" json:"payment_mode"`
	DeliveryStatus string `form:"delivery_status" json:"delivery_status"`
	Remarks        string `form:"remarks" json:"remarks"`
}

// UpdateRequest carries the order edit form. Empty fields mean "keep the
// stored value".
type UpdateRequest struct {
	Date           string `form:"date" json:"date"`
	CustomerID     string `form:"customer_id" json:"customer_id"`
	SareeType      string `form:"saree_type" json:"saree_type"`
	Amount         string `form:"amount" json:"amount"`
	Purchase       string `form:"purchase" json:"purchase"`
	PaymentStatus  string `form:"payment_status" json:"payment_status"`
	PaymentMode    string `form:"payment_mode" json:"payment_mode"`
	DeliveryStatus string `form:"delivery_status" json:"delivery_status"`
	Remarks        string `form:"remarks" json:"remarks"`
}
