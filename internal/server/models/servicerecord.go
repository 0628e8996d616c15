package models

import "time"

// ServiceRecord is one entry in a vehicle's service history.
type ServiceRecord struct {
	ID           string
	UserID       string
	VehicleID    string
	ServiceType  string
	ServiceDate  time.Time
	Mileage      int64
	Cost         float64
	WorkshopName string
	Notes        string
	ReceiptKey   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalCost sums the cost field over records. An empty slice sums to 0;
// no rounding is applied, formatting belongs to the client.
func TotalCost(records []*ServiceRecord) float64 {
	var total float64
	for _, r := range records {
		total += r.Cost
	}
	return total
}
