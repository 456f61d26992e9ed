package domain

import "time"

type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Capacity     int       `json:"capacity"`
	PricePerHour float64   `json:"price_per_hour"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// largeVenueSurcharge is added to quotes for venues above 200 seats.
const largeVenueSurcharge = 500.0

// Quote prices a booking of the venue for the given number of hours.
func (v *Venue) Quote(hours int) float64 {
	if hours <= 0 {
		hours = 3
	}
	price := v.PricePerHour * float64(hours)
	if v.Capacity > 200 {
		price += largeVenueSurcharge
	}
	return price
}
