package booking

import (
	"math"
	"time"
)

const taxRate = 0.15

// Quote is the priced breakdown of a stay.
type Quote struct {
	Nights        int
	PricePerNight float64
	Subtotal      float64
	Tax           float64
	Total         float64
}

// ComputeQuote prices a stay: whole nights between the dates, subtotal,
// 15% tax rounded to cents, and the grand total.
func ComputeQuote(checkIn, checkOut time.Time, pricePerNight float64) Quote {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	subtotal := float64(nights) * pricePerNight
	tax := round2(subtotal * taxRate)
	return Quote{
		Nights:        nights,
		PricePerNight: pricePerNight,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal + tax,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
