package models

import "time"

// Workshop is a catalog entry the user can book an appointment with.
// The catalog is seeded by migration and read-only through the API.
type Workshop struct {
	ID      string
	Name    string
	Address string
	Rating  float64
}

// BookingStatus tracks an appointment's lifecycle. Unlike reminder status
// it is stored, not derived.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingServiceTypes is the fixed set of service types offered on the
// booking form.
var BookingServiceTypes = []string{
	"Regular Service",
	"Oil Change",
	"Brake Service",
	"Tire Replacement",
	"Battery Replacement",
	"Engine Repair",
	"Other",
}

// ValidBookingServiceType reports whether s is one of BookingServiceTypes.
func ValidBookingServiceType(s string) bool {
	for _, t := range BookingServiceTypes {
		if t == s {
			return true
		}
	}
	return false
}

type Booking struct {
	ID          string
	UserID      string
	VehicleID   string
	WorkshopID  string
	ScheduledAt time.Time
	ServiceType string
	Notes       string
	Status      BookingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
