package database

import (
	"fmt"
	"math/rand"

	"saree-crm/logger"
	"saree-crm/models/customer"
	"saree-crm/models/followup"
	"saree-crm/models/order"
	"saree-crm/utils"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// SeedDemo populates a fresh database with demo customers, orders and
// follow-ups. Skipped when any customer already exists.
func SeedDemo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&customer.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cities := []string{"Hyderabad", "Guntur", "Warangal", "Vijayawada", "Nizamabad", "Secunderabad"}
	names := []string{
		"Farah Jain", "Varsha Khanna", "Oviya Kapoor", "Oviya Reddy", "Varsha Patel",
		"Yamini Jain", "Nisha Bhat", "Rani Agarwal", "Sarita Iyer", "Jaya Jain",
		"Lakshmi Menon", "Priya Reddy", "Aravind",
	}

	var customers []customer.Customer
	for i, name := range names {
		phone := fmt.Sprintf("%d", 9000000001+i)
		c := customer.Customer{
			Code:      fmt.Sprintf("CUST%05d", i+1),
			Name:      name,
			Instagram: "None",
			Phone:     &phone,
			City:      cities[(i+1)%len(cities)],
		}
		if err := db.Create(&c).Error; err != nil {
			return err
		}
		customers = append(customers, c)
	}

	types := []string{"Banarasi", "Silk", "Chiffon", "Georgette", "Kanchipuram", "Paithani", "Organza", "Linen", "Cotton"}
	amounts := []int{799, 999, 1499, 2499, 2999, 4999, 8250, 9000, 10000, 12250, 14990}
	deliveries := []order.DeliveryStatus{order.DeliveryStatusPending, order.DeliveryStatusDelivered, order.DeliveryStatusCancelled}
	today := now.BeginningOfDay()

	for i := 1; i < 40; i++ {
		cust := customers[rand.Intn(len(customers))]
		paid := order.PaymentStatusPending
		mode := order.PaymentModePending
		if rand.Intn(3) != 0 {
			paid = order.PaymentStatusPaid
			mode = order.PaymentModeUPI
		}
		o := order.Order{
			OrderID:        fmt.Sprintf("ORD%s-%d", today.Format("20060102"), 10000+i),
			Date:           today,
			CustomerID:     cust.ID,
			SareeType:      types[rand.Intn(len(types))],
			Amount:         amounts[rand.Intn(len(amounts))],
			Purchase:       order.PurchaseOnline,
			PaymentStatus:  paid,
			PaymentMode:    mode,
			DeliveryStatus: deliveries[rand.Intn(len(deliveries))],
		}
		if rand.Intn(2) == 0 {
			o.Purchase = order.PurchaseOffline
		}
		if err := db.Create(&o).Error; err != nil {
			return err
		}
	}

	for i := 1; i < 6; i++ {
		f := followup.FollowUp{
			DueDate:    utils.Today(),
			CustomerID: customers[i].ID,
			Notes:      "Call customer",
			Status:     followup.StatusOpen,
		}
		if err := db.Create(&f).Error; err != nil {
			return err
		}
	}

	logger.Success("Seeded demo data")
	return nil
}
