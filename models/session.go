package models

// Transcript roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one entry of a session transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Step is the position in the fixed booking dialogue sequence. Steps only
// ever advance forward; the only way back is an explicit session reset.
type Step string

const (
	StepInitial       Step = "initial"
	StepShowingHotels Step = "showing_hotels"
	StepCheckIn       Step = "check_in"
	StepCheckOut      Step = "check_out"
	StepNumGuests     Step = "num_guests"
	StepGuestNames    Step = "guest_names"
	StepPhone         Step = "phone"
	StepCompleted     Step = "completed"
)

var stepOrder = map[Step]int{
	StepInitial:       0,
	StepShowingHotels: 1,
	StepCheckIn:       2,
	StepCheckOut:      3,
	StepNumGuests:     4,
	StepGuestNames:    5,
	StepPhone:         6,
	StepCompleted:     7,
}

// Ordinal returns the position of the step in the booking sequence, or -1
// for an unknown value.
func (s Step) Ordinal() int {
	ord, ok := stepOrder[s]
	if !ok {
		return -1
	}
	return ord
}

// SessionState holds everything the dialogue engine tracks for one session.
// It is owned by the session store; callers receive copies and mutate through
// the store only.
type SessionState struct {
	Transcript []ChatMessage `json:"transcript"`
	Step       Step          `json:"step"`

	SelectedHotel        string       `json:"selected_hotel,omitempty"`
	SelectedHotelDetails *HotelRecord `json:"selected_hotel_details,omitempty"`
	SelectedHotelImage   string       `json:"selected_hotel_image,omitempty"`

	CheckIn    string   `json:"check_in,omitempty"`
	CheckOut   string   `json:"check_out,omitempty"`
	NumGuests  int      `json:"num_guests,omitempty"`
	GuestNames []string `json:"guest_names,omitempty"`
	Phone      string   `json:"phone,omitempty"`

	UserLocation       string `json:"user_location,omitempty"`
	UserDatesConfirmed bool   `json:"user_dates_confirmed,omitempty"`
	ImageSent          bool   `json:"image_sent,omitempty"`
}
