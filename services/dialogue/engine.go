package dialogue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"innkeeper/models"
	"innkeeper/services/booking"
	"innkeeper/services/catalog"
	"innkeeper/services/llm"
	"innkeeper/services/session"
)

const (
	turnTemperature = 0.7
	turnMaxTokens   = 700
)

// TurnOutcome is the externally visible result of one chat turn. When the
// booking completes, Confirmation replaces Turn as the response.
type TurnOutcome struct {
	Turn         *models.TurnResponse
	Confirmation *models.BookingConfirmation
}

// stepHandler applies deterministic slot-filling for one dialogue step,
// mutating the state in place and returning the reply that overrides the
// model's candidate.
type stepHandler func(st *models.SessionState, message string) string

// Engine is the per-turn orchestrator: it reads session state, decides
// between the conversational model and the fixed slot-filling rules, and
// advances the booking step machine.
type Engine struct {
	catalog   *catalog.Index
	sessions  session.Store
	chat      llm.ChatClient
	finalizer *booking.Finalizer
	logger    *zap.Logger
	timeout   time.Duration
	steps     map[models.Step]stepHandler
}

func NewEngine(ix *catalog.Index, sessions session.Store, chat llm.ChatClient, finalizer *booking.Finalizer, logger *zap.Logger, timeout time.Duration) *Engine {
	e := &Engine{
		catalog:   ix,
		sessions:  sessions,
		chat:      chat,
		finalizer: finalizer,
		logger:    logger,
		timeout:   timeout,
	}
	// Step dispatch is a transition table rather than chained conditionals,
	// so the coverage of the booking sequence is visible in one place.
	e.steps = map[models.Step]stepHandler{
		models.StepCheckIn:    handleCheckIn,
		models.StepCheckOut:   handleCheckOut,
		models.StepNumGuests:  handleNumGuests,
		models.StepGuestNames: handleGuestNames,
		models.StepPhone:      handlePhone,
	}
	return e
}

// ProcessTurn runs one turn of the dialogue for a session.
func (e *Engine) ProcessTurn(ctx context.Context, sessionID, message string) (*TurnOutcome, error) {
	st, err := e.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	st.Transcript = append(st.Transcript, models.ChatMessage{Role: models.RoleUser, Content: message})

	var reply string
	var hotels []models.HotelRecord

	if st.Step == models.StepInitial {
		reply, hotels = e.initialTurn(ctx, st, message)
	} else {
		reply = e.bookingTurn(ctx, st, message)
	}

	st.Transcript = append(st.Transcript, models.ChatMessage{Role: models.RoleAssistant, Content: reply})

	var imageURL string
	if st.SelectedHotelImage != "" && !st.ImageSent {
		imageURL = st.SelectedHotelImage
		st.ImageSent = true
	}

	if err := e.sessions.Mutate(ctx, sessionID, func(s *models.SessionState) { *s = *st }); err != nil {
		return nil, err
	}

	if st.Step == models.StepCompleted {
		confirmation, err := e.finalizer.Confirm(ctx, sessionID, models.BookingDetails{
			HotelName:  st.SelectedHotel,
			RoomType:   catalog.RoomTypeLabel(*st.SelectedHotelDetails),
			CheckIn:    st.CheckIn,
			CheckOut:   st.CheckOut,
			Guests:     st.NumGuests,
			GuestNames: st.GuestNames,
			Phone:      st.Phone,
			Location:   st.SelectedHotelDetails.Location,
		})
		if err != nil {
			return nil, err
		}
		return &TurnOutcome{Confirmation: confirmation}, nil
	}

	turn := &models.TurnResponse{
		Reply:    reply,
		Hotels:   hotels,
		Step:     st.Step,
		ImageURL: imageURL,
	}
	if st.Step != models.StepInitial && st.SelectedHotelDetails != nil {
		turn.SelectedHotelDetails = selectedDetails(*st.SelectedHotelDetails)
	}
	return &TurnOutcome{Turn: turn}, nil
}

// initialTurn shows the hotel listing when both a location and a date signal
// are present; otherwise it delegates to the model with a clarification
// fallback chosen by whichever slot is missing.
func (e *Engine) initialTurn(ctx context.Context, st *models.SessionState, message string) (string, []models.HotelRecord) {
	location, hasLocation := e.catalog.ExtractLocation(message)
	hasDates := HasDateSignal(message)

	if hasLocation && hasDates {
		st.UserLocation = location
		st.UserDatesConfirmed = true
		st.Step = models.StepShowingHotels
		return e.catalog.FormatListing(location), e.catalog.ByLocation(location)
	}

	reply, err := e.converse(ctx, st.Transcript)
	if err != nil {
		e.logger.Warn("initial-step model call failed, falling back to clarification", zap.Error(err))
		switch {
		case !hasLocation && !hasDates:
			reply = clarifyBothMissing
		case !hasLocation:
			reply = clarifyNoLocation
		default:
			reply = fmt.Sprintf(clarifyNoDatesFmt, location)
		}
	}
	return reply, nil
}

// bookingTurn always asks the model for a candidate reply first, then lets at
// most one deterministic rule override it: hotel selection while listing, or
// the current step's slot handler once a hotel is selected.
func (e *Engine) bookingTurn(ctx context.Context, st *models.SessionState, message string) string {
	reply, err := e.converse(ctx, st.Transcript)
	if err != nil {
		e.logger.Warn("model call failed mid-flow", zap.Error(err))
		return troubleReply
	}

	if st.SelectedHotel == "" && st.Step == models.StepShowingHotels {
		if selected := e.trySelectHotel(st, message); selected != "" {
			return selected
		}
		return reply
	}

	if st.SelectedHotel != "" {
		if handler, ok := e.steps[st.Step]; ok {
			return handler(st, message)
		}
	}
	return reply
}

func (e *Engine) converse(ctx context.Context, transcript []models.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.chat.Chat(ctx, transcript, turnTemperature, turnMaxTokens)
}

// trySelectHotel scans the listed hotels for a name mentioned in the message.
// The first match becomes the selection and advances the flow to check-in.
func (e *Engine) trySelectHotel(st *models.SessionState, message string) string {
	lower := strings.ToLower(message)
	for _, h := range e.catalog.ByLocation(st.UserLocation) {
		if !strings.Contains(lower, strings.ToLower(h.HotelName)) {
			continue
		}
		hotel := h
		st.SelectedHotel = hotel.HotelName
		st.SelectedHotelDetails = &hotel
		st.SelectedHotelImage = hotel.ImageURL
		st.Step = models.StepCheckIn
		return fmt.Sprintf(hotelSelectedFmt,
			hotel.HotelName, hotel.Location, hotel.NumberOfGuests,
			joinOrNone(hotel.Amenities), joinOrNone(hotel.Facilities))
	}
	return ""
}

func handleCheckIn(st *models.SessionState, message string) string {
	date, match := ExtractISODate(message)
	switch match {
	case DateValid:
		st.CheckIn = date
		st.Step = models.StepCheckOut
		return fmt.Sprintf(checkInConfirmedFmt, date)
	case DateInvalid:
		return invalidCheckIn
	default:
		return promptCheckIn
	}
}

func handleCheckOut(st *models.SessionState, message string) string {
	date, match := ExtractISODate(message)
	switch match {
	case DateValid:
		st.CheckOut = date
		st.Step = models.StepNumGuests
		return fmt.Sprintf(checkOutConfirmedFmt, date, st.SelectedHotelDetails.NumberOfGuests)
	case DateInvalid:
		return invalidCheckOut
	default:
		return promptCheckOut
	}
}

func handleNumGuests(st *models.SessionState, message string) string {
	count, ok := ExtractGuestCount(message)
	if !ok {
		return promptGuestCount
	}
	capacity := st.SelectedHotelDetails.NumberOfGuests
	if count > capacity {
		return fmt.Sprintf(capacityExceededFmt, capacity)
	}
	if count <= 0 {
		return invalidGuestCount
	}
	st.NumGuests = count
	st.Step = models.StepGuestNames
	return fmt.Sprintf(guestCountFmt, count)
}

func handleGuestNames(st *models.SessionState, message string) string {
	name := GuestName(message)
	if name == "" {
		return fmt.Sprintf(askGuestNameFmt, len(st.GuestNames)+1)
	}
	st.GuestNames = append(st.GuestNames, name)
	recorded := len(st.GuestNames)
	if recorded < st.NumGuests {
		return fmt.Sprintf(nextGuestNameFmt, recorded, name, recorded+1)
	}
	st.Step = models.StepPhone
	return fmt.Sprintf(lastGuestNameFmt, recorded, name)
}

func handlePhone(st *models.SessionState, message string) string {
	phone, ok := ExtractPhone(message)
	if !ok {
		return promptPhone
	}
	st.Phone = phone
	st.Step = models.StepCompleted
	return bookingAcknowledged
}

func selectedDetails(h models.HotelRecord) *models.SelectedHotelDetails {
	return &models.SelectedHotelDetails{
		HotelName:      h.HotelName,
		Location:       h.Location,
		PricePerNight:  h.PricePerNight,
		NumberOfGuests: h.NumberOfGuests,
		Amenities:      h.Amenities,
		Facilities:     h.Facilities,
		Description:    h.Description,
		RoomType:       catalog.RoomTypeLabel(h),
	}
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
