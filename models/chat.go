package models

// TurnRequest is the payload of POST /chat/:sessionID.
type TurnRequest struct {
	Message string `json:"message"`
}

// SelectedHotelDetails is the hotel snapshot surfaced on every turn after a
// hotel has been chosen. RoomType carries the sniffed room-type label rather
// than repeating the hotel name.
type SelectedHotelDetails struct {
	HotelName      string   `json:"hotel_name"`
	Location       string   `json:"location"`
	PricePerNight  float64  `json:"price_per_night"`
	NumberOfGuests int      `json:"number_of_guests"`
	Amenities      []string `json:"amenities"`
	Facilities     []string `json:"facilities"`
	Description    string   `json:"description"`
	RoomType       string   `json:"room_type"`
}

// TurnResponse is the result of one chat turn.
type TurnResponse struct {
	Reply                string                `json:"reply"`
	Hotels               []HotelRecord         `json:"hotels"`
	SelectedHotelDetails *SelectedHotelDetails `json:"selected_hotel_details"`
	AudioURL             string                `json:"audio_url"`
	Step                 Step                  `json:"step"`
	ImageURL             string                `json:"image_url,omitempty"`
}
