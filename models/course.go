package models

import "time"

// CourseCategory is the language track a course is taught in.
type CourseCategory string

const (
	CategoryTamil   CourseCategory = "Tamil"
	CategoryEnglish CourseCategory = "English"
	CategorySinhala CourseCategory = "Sinhala"
)

// ValidCourseCategory reports whether v is one of the known tracks.
func ValidCourseCategory(v string) bool {
	switch CourseCategory(v) {
	case CategoryTamil, CategoryEnglish, CategorySinhala:
		return true
	}
	return false
}

type Course struct {
	ID           uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string            `gorm:"not null" json:"name"`
	Description  string            `gorm:"not null" json:"description"`
	Price        float64           `gorm:"not null" json:"price"`
	Duration     string            `json:"duration"`
	Image        string            `json:"image"`
	DemoVideo    string            `json:"demoVideo"`
	Category     CourseCategory    `gorm:"type:VARCHAR(20);not null" json:"category"`
	MainHeadings CourseHeadingList `json:"mainHeadings"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}
