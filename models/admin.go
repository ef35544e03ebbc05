package models

import "time"

type Admin struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Approved     bool   `json:"approved"`
	CreatedAt    time.Time
}
