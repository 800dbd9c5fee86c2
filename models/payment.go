package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment review states for the bank-transfer flow
const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// Payment is a bank-transfer receipt submitted by the customer for an order.
// The receipt image itself lives on the external asset host; only its URL is stored.
type Payment struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;uniqueIndex"`
	UserID     uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	Method     string     `json:"method" gorm:"type:varchar(30);not null;default:'bank_transfer'"`
	Amount     float64    `json:"amount" gorm:"type:numeric(14,2);not null"`
	ReceiptURL string     `json:"receipt_url" gorm:"type:text;not null"`
	Status     string     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	AdminNotes *string    `json:"admin_notes,omitempty" gorm:"type:text"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty" gorm:"type:uuid"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

type SubmitReceiptRequest struct {
	ReceiptURL string `json:"receipt_url" binding:"required,url"`
}

type ReviewPaymentRequest struct {
	Approve    bool    `json:"approve"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// AdminPaymentListRow is one row of the back-office payment review queue
type AdminPaymentListRow struct {
	ID            uuid.UUID `json:"id"`
	OrderID       uuid.UUID `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Amount        float64   `json:"amount"`
	ReceiptURL    string    `json:"receipt_url"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
