package models

import "time"

type Vehicle struct {
	ID           string
	UserID       string
	Make         string
	Model        string
	Year         int
	LicensePlate string
	Color        string
	FuelType     string
	Mileage      int64
	PurchaseDate *time.Time
	// PhotoKey is the object-storage key of the vehicle photo, empty when
	// no photo has been uploaded.
	PhotoKey  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
