package models

// BookingDetails is the finalizer input: the slots accumulated by the
// dialogue engine, re-validated as the external contract of /confirm.
type BookingDetails struct {
	HotelName  string   `json:"hotel_name" binding:"required"`
	RoomType   string   `json:"room_type"`
	CheckIn    string   `json:"check_in" binding:"required"`
	CheckOut   string   `json:"check_out" binding:"required"`
	Guests     int      `json:"guests" binding:"required"`
	GuestNames []string `json:"guest_names" binding:"required"`
	Phone      string   `json:"phone" binding:"required"`
	Location   string   `json:"location"`
}

// BookingConfirmation is the terminal response of a completed booking.
// Payload always carries the structured booking fields plus the computed
// nights, price_per_night, subtotal, tax and total.
type BookingConfirmation struct {
	Reply    string         `json:"reply"`
	Final    bool           `json:"final"`
	Payload  map[string]any `json:"json"`
	AudioURL string         `json:"audio_url"`
}
