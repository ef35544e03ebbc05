package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting contact
	OrderStatusConfirmed OrderStatus = "confirmed" // confirmed over WhatsApp
	OrderStatusCompleted OrderStatus = "completed" // access delivered
	OrderStatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Ref         string      `gorm:"uniqueIndex;not null" json:"ref"`
	Name        string      `gorm:"not null" json:"name"`
	Mobile      string      `gorm:"not null" json:"mobile"`
	InquiryType string      `json:"inquiryType"`
	Items       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// OrderItem snapshots one cart line at the moment the order was placed,
// so later edits to the course or service do not rewrite order history.
type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"-"`
	LineID        string  `json:"lineId"`
	Kind          string  `json:"kind"`
	RefID         uint    `json:"refId"`
	Title         string  `json:"title"`
	DurationLabel string  `json:"durationLabel"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Image         string  `json:"image"`
}
