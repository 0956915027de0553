package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"innkeeper/models"
	"innkeeper/services/catalog"
	"innkeeper/services/llm"
	"innkeeper/services/session"
)

const (
	confirmTemperature = 0.7
	confirmMaxTokens   = 500
	dateLayout         = "2006-01-02"
)

var phoneFormatRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

var requiredPayloadKeys = []string{
	"hotel_name", "check_in", "check_out", "guests", "guest_names", "phone", "location",
}

// Finalizer validates completed slot state and produces the priced booking
// confirmation. Once validation passes it always yields a structured payload,
// synthesizing one when the conversational model cannot.
type Finalizer struct {
	Catalog  *catalog.Index
	Sessions session.Store
	Chat     llm.ChatClient
	Logger   *zap.Logger
	Timeout  time.Duration
}

// Confirm re-validates the booking details, asks the conversational model to
// restate the confirmation as a structured block, and attaches the computed
// price breakdown.
func (f *Finalizer) Confirm(ctx context.Context, sessionID string, details models.BookingDetails) (*models.BookingConfirmation, error) {
	checkIn, err := time.Parse(dateLayout, details.CheckIn)
	if err != nil {
		return nil, NewValidationError("Incorrect date format! Date format should be YYYY-MM-DD")
	}
	checkOut, err := time.Parse(dateLayout, details.CheckOut)
	if err != nil {
		return nil, NewValidationError("Incorrect date format! Date format should be YYYY-MM-DD")
	}
	if !checkOut.After(checkIn) {
		return nil, NewValidationError("Check-out date must be after check-in date")
	}
	if details.Guests != len(details.GuestNames) {
		return nil, NewValidationError("Number of guests must match the number of guest names")
	}
	if !phoneFormatRe.MatchString(details.Phone) {
		return nil, NewValidationError("Phone number must be in the XXX-XXX-XXXX format")
	}

	hotel, ok := f.Catalog.ByName(details.HotelName)
	if !ok {
		return nil, NewNotFoundError("Selected hotel not found")
	}
	if details.Guests > hotel.NumberOfGuests {
		return nil, NewValidationError("Number of guests (%d) exceeds hotel capacity (%d)", details.Guests, hotel.NumberOfGuests)
	}

	if err := f.Sessions.Append(ctx, sessionID, models.RoleUser, bookingMessage(details)); err != nil {
		return nil, err
	}
	st, err := f.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	chatCtx, cancel := context.WithTimeout(ctx, f.Timeout)
	reply, chatErr := f.Chat.Chat(chatCtx, st.Transcript, confirmTemperature, confirmMaxTokens)
	cancel()
	if chatErr != nil {
		f.Logger.Warn("confirmation model call failed, using fallback text", zap.Error(chatErr))
		reply = fallbackConfirmationText(details)
	}
	if err := f.Sessions.Append(ctx, sessionID, models.RoleAssistant, reply); err != nil {
		return nil, err
	}

	payload := extractPayload(reply)
	if payload == nil {
		payload = synthesizePayload(details)
	}

	quote := ComputeQuote(checkIn, checkOut, hotel.PricePerNight)
	payload["nights"] = quote.Nights
	payload["price_per_night"] = quote.PricePerNight
	payload["subtotal"] = quote.Subtotal
	payload["tax"] = quote.Tax
	payload["total"] = quote.Total

	return &models.BookingConfirmation{
		Reply:   reply,
		Final:   true,
		Payload: payload,
	}, nil
}

func bookingMessage(d models.BookingDetails) string {
	return fmt.Sprintf(
		"User has selected %s for booking.\nLocation: %s\nCheck-in: %s\nCheck-out: %s\nNumber of guests: %d\nGuest names: %s\nPhone: %s\nPlease confirm the booking and return the details in the specified JSON format.",
		d.HotelName, d.Location, d.CheckIn, d.CheckOut, d.Guests, strings.Join(d.GuestNames, ", "), d.Phone,
	)
}

func fallbackConfirmationText(d models.BookingDetails) string {
	return fmt.Sprintf(
		"Booking confirmed for %s!\nLocation: %s\nCheck-in: %s, Check-out: %s\nGuests: %d (%s)\nPhone: %s",
		d.HotelName, d.Location, d.CheckIn, d.CheckOut, d.Guests, strings.Join(d.GuestNames, ", "), d.Phone,
	)
}

// extractPayload parses the first balanced brace-delimited span of the reply
// and checks it carries every required booking field. Anything short of that
// returns nil and the caller synthesizes the payload instead.
func extractPayload(reply string) map[string]any {
	block, ok := extractJSONBlock(reply)
	if !ok {
		return nil
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(block), &payload); err != nil {
		return nil
	}
	for _, key := range requiredPayloadKeys {
		if _, ok := payload[key]; !ok {
			return nil
		}
	}
	return payload
}

func extractJSONBlock(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func synthesizePayload(d models.BookingDetails) map[string]any {
	return map[string]any{
		"hotel_name":  d.HotelName,
		"check_in":    d.CheckIn,
		"check_out":   d.CheckOut,
		"guests":      d.Guests,
		"guest_names": d.GuestNames,
		"phone":       d.Phone,
		"location":    d.Location,
	}
}
