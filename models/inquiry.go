package models

import "time"

// Inquiry is a storefront contact-form submission. Write-once; admins
// only ever list them.
type Inquiry struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Mobile      string    `gorm:"not null" json:"mobile"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceRequest is a "request a service we don't list yet" submission.
// Same lifecycle as Inquiry.
type ServiceRequest struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Mobile      string    `gorm:"not null" json:"mobile"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
