package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order status lifecycle. Payment happens by bank transfer: the customer
// uploads a receipt, an admin approves or rejects it from the back office.
const (
	OrderStatusPendingPayment   = "pending_payment"
	OrderStatusPaymentSubmitted = "payment_submitted"
	OrderStatusPaymentApproved  = "payment_approved"
	OrderStatusShipped          = "shipped"
	OrderStatusDelivered        = "delivered"
	OrderStatusCancelled        = "cancelled"
)

// orderStatusTransitions defines which status changes the back office may apply.
var orderStatusTransitions = map[string][]string{
	OrderStatusPendingPayment:   {OrderStatusPaymentSubmitted, OrderStatusCancelled},
	OrderStatusPaymentSubmitted: {OrderStatusPaymentApproved, OrderStatusPendingPayment, OrderStatusCancelled},
	OrderStatusPaymentApproved:  {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:          {OrderStatusDelivered},
	OrderStatusDelivered:        {},
	OrderStatusCancelled:        {},
}

// CanTransitionOrderStatus reports whether an order may move from one status to another.
func CanTransitionOrderStatus(from, to string) bool {
	for _, next := range orderStatusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order represents a complete customer order
type Order struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	OrderNumber     string         `json:"order_number" gorm:"type:varchar(30);uniqueIndex;not null"`
	AddressID       *uuid.UUID     `json:"address_id,omitempty" gorm:"type:uuid"`
	AddressSnapshot datatypes.JSON `json:"address_snapshot,omitempty" gorm:"type:jsonb"`
	Subtotal        float64        `json:"subtotal" gorm:"type:numeric(14,2);not null"`
	ShippingCost    float64        `json:"shipping_cost" gorm:"type:numeric(14,2);not null;default:0"`
	TotalAmount     float64        `json:"total_amount" gorm:"type:numeric(14,2);not null"`
	Status          string         `json:"status" gorm:"type:varchar(30);not null;index"`
	CustomerNotes   *string        `json:"customer_notes,omitempty" gorm:"type:text"`
	AdminNotes      *string        `json:"admin_notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	ShippedAt       *time.Time     `json:"shipped_at,omitempty"`
	DeliveredAt     *time.Time     `json:"delivered_at,omitempty"`

	Items   []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Payment *Payment    `json:"payment,omitempty" gorm:"foreignKey:OrderID"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// OrderItem represents an individual product line in an order
type OrderItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	ProductName string    `json:"product_name" gorm:"not null"`
	UnitPrice   float64   `json:"unit_price" gorm:"type:numeric(14,2);not null"`
	Quantity    int       `json:"quantity" gorm:"not null;check:quantity > 0"`
	Subtotal    float64   `json:"subtotal" gorm:"type:numeric(14,2);not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// CreateOrderRequest for checkout
type CreateOrderRequest struct {
	AddressID     uuid.UUID        `json:"address_id" binding:"required"`
	Items         []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	CustomerNotes *string          `json:"customer_notes,omitempty"`
}

// OrderItemInput for cart items
type OrderItemInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// OrderHistoryResponse for the customer order list
type OrderHistoryResponse struct {
	ID           uuid.UUID `json:"id"`
	OrderNumber  string    `json:"order_number"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"total_amount"`
	TotalDisplay string    `json:"total_display"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderStatusStep is one entry of the order tracking timeline
type OrderStatusStep struct {
	Status     string     `json:"status"`
	ReachedAt  *time.Time `json:"reached_at,omitempty"`
	IsComplete bool       `json:"is_complete"`
}

// OrderDetailResponse combines order, items, payment and timeline
type OrderDetailResponse struct {
	Order    Order             `json:"order"`
	Timeline []OrderStatusStep `json:"timeline"`
}

// AdminOrderListRow is one row of the back-office order table
type AdminOrderListRow struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"order_number"`
	CustomerID    uuid.UUID `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	CreatedAt     time.Time `json:"created_at"`
	ItemCount     int       `json:"item_count"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
	PaymentStatus *string   `json:"payment_status,omitempty"`
}

// OrderStatsResponse summarizes orders for the admin dashboard
type OrderStatsResponse struct {
	TotalOrders     int     `json:"total_orders"`
	PendingPayment  int     `json:"pending_payment"`
	AwaitingReview  int     `json:"awaiting_review"`
	Completed       int     `json:"completed"`
	Cancelled       int     `json:"cancelled"`
	RevenueTotal    float64 `json:"revenue_total"`
	AverageOrder    float64 `json:"average_order"`
	RevenueThisWeek float64 `json:"revenue_this_week"`
}

// BuildOrderTimeline derives the tracking timeline shown on the order detail page.
// Cancelled orders get a two-step timeline ending in cancellation.
func BuildOrderTimeline(o *Order, payment *Payment) []OrderStatusStep {
	if o.Status == OrderStatusCancelled {
		return []OrderStatusStep{
			{Status: OrderStatusPendingPayment, ReachedAt: &o.CreatedAt, IsComplete: true},
			{Status: OrderStatusCancelled, ReachedAt: &o.UpdatedAt, IsComplete: true},
		}
	}

	rank := map[string]int{
		OrderStatusPendingPayment:   0,
		OrderStatusPaymentSubmitted: 1,
		OrderStatusPaymentApproved:  2,
		OrderStatusShipped:          3,
		OrderStatusDelivered:        4,
	}
	current := rank[o.Status]

	steps := []OrderStatusStep{
		{Status: OrderStatusPendingPayment, ReachedAt: &o.CreatedAt, IsComplete: true},
	}

	var submittedAt, approvedAt *time.Time
	if payment != nil {
		submittedAt = &payment.CreatedAt
		approvedAt = payment.ReviewedAt
	}
	steps = append(steps,
		OrderStatusStep{Status: OrderStatusPaymentSubmitted, ReachedAt: submittedAt, IsComplete: current >= 1},
		OrderStatusStep{Status: OrderStatusPaymentApproved, ReachedAt: approvedAt, IsComplete: current >= 2},
		OrderStatusStep{Status: OrderStatusShipped, ReachedAt: o.ShippedAt, IsComplete: current >= 3},
		OrderStatusStep{Status: OrderStatusDelivered, ReachedAt: o.DeliveredAt, IsComplete: current >= 4},
	)
	return steps
}
