package domain

import "time"

// Service represents a service offered by the barbershop
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ValidDuration returns true if the duration fits business limits
func ValidDuration(minutes int) bool {
	return minutes >= MinServiceDurationMinutes && minutes <= MaxServiceDurationMinutes
}
