package models

// HotelRecord is a single catalog entry. Records are loaded once at startup
// and treated as immutable afterwards.
type HotelRecord struct {
	HotelName     string   `json:"hotel_name" bson:"hotel_name"`
	Location      string   `json:"location" bson:"location"`
	PricePerNight float64  `json:"price_per_night" bson:"price_per_night"`
	// NumberOfGuests is the maximum capacity of the room.
	NumberOfGuests int      `json:"number_of_guests" bson:"number_of_guests"`
	Amenities      []string `json:"amenities" bson:"amenities"`
	Facilities     []string `json:"facilities" bson:"facilities"`
	Description    string   `json:"description" bson:"description"`
	ImageURL       string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
}
