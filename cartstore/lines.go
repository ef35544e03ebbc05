// Package cartstore owns the server-side shopping cart: a token-scoped
// list of selected lines persisted as one redis blob, with change
// notification so every open client of the same cart stays in sync.
package cartstore

import (
	"fmt"
	"strings"
	"time"
)

type Kind string

const (
	KindCourse Kind = "course"
	KindPlan   Kind = "plan"
)

// Line is one cart entry. Course purchases and OTT plan purchases share
// this shape; DurationLabel is empty for courses.
type Line struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"kind"`
	RefID         uint      `json:"refId"`
	Title         string    `json:"title"`
	DurationLabel string    `json:"durationLabel,omitempty"`
	Price         float64   `json:"price"`
	Qty           int       `json:"qty"`
	Image         string    `json:"image,omitempty"`
	AddedAt       time.Time `json:"addedAt"`
}

// CourseLineID keys a course line by course id, so two courses that
// happen to share a name can never collide.
func CourseLineID(courseID uint) string {
	return fmt.Sprintf("course-%d", courseID)
}

// PlanLineID keys a plan line by service id plus duration, so distinct
// durations of the same service stay distinct lines.
func PlanLineID(serviceID uint, duration string) string {
	slug := strings.ToLower(strings.TrimSpace(duration))
	slug = strings.Join(strings.Fields(slug), "-")
	return fmt.Sprintf("%d-%s", serviceID, slug)
}

// Add appends a line unless one with the same id is already present, in
// which case the cart is returned unchanged and already is true.
func Add(lines []Line, line Line) (out []Line, already bool) {
	for _, l := range lines {
		if l.ID == line.ID {
			return lines, true
		}
	}
	if line.Qty < 1 {
		line.Qty = 1
	}
	return append(lines, line), false
}

// SetQuantity updates a line's quantity, clamped to a minimum of 1.
// Unknown ids are a no-op.
func SetQuantity(lines []Line, id string, qty int) []Line {
	if qty < 1 {
		qty = 1
	}
	for i := range lines {
		if lines[i].ID == id {
			lines[i].Qty = qty
			break
		}
	}
	return lines
}

// Remove drops the line with the given id if present.
func Remove(lines []Line, id string) []Line {
	for i := range lines {
		if lines[i].ID == id {
			return append(lines[:i], lines[i+1:]...)
		}
	}
	return lines
}

// Total sums price * qty across the cart.
func Total(lines []Line) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price * float64(l.Qty)
	}
	return total
}
