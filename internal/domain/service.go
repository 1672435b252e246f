package domain

import "time"

// Service represents a bookable service from the business catalog
// Duration and price are copied onto a booking at creation time and stay
// immutable for the booking's lifetime even if the service is edited later
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           float64
	Active          bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsFree returns true if the service has no price
// Free services skip the payment step and are confirmed immediately
func (s *Service) IsFree() bool {
	return s.Price == 0
}
