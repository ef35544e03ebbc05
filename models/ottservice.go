package models

import "time"

// OttService is a streaming/subscription product sold as one or more
// duration-priced plans. Plans is the canonical list; the two Legacy
// columns keep whatever shape the record was originally submitted with,
// so rows created before normalize-on-write can still be served.
type OttService struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string     `gorm:"not null" json:"name"`
	Description        string     `gorm:"not null" json:"description"`
	Category           string     `gorm:"not null" json:"category"`
	Price              float64    `json:"price"`
	DiscountedPrice    *float64   `json:"discountedPrice,omitempty"`
	Images             StringList `json:"images"`
	AccessLicenseTypes StringList `json:"accessLicenseTypes"`
	VideoQuality       string     `json:"videoQuality"`
	Stock              string     `gorm:"type:VARCHAR(20)" json:"stock"`
	Plans              PlanList   `json:"plans"`
	LegacyPlanData     RawJSON    `json:"-"`
	LegacyHeadingData  RawJSON    `json:"-"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}
