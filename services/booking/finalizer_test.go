package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"innkeeper/models"
	"innkeeper/services/catalog"
	"innkeeper/services/session"
)

type fakeChat struct {
	reply string
	err   error
	calls int
}

func (f *fakeChat) Chat(ctx context.Context, transcript []models.ChatMessage, temperature float32, maxTokens int) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func newTestFinalizer(chat *fakeChat) (*Finalizer, session.Store) {
	ix := catalog.NewIndex([]models.HotelRecord{
		{
			HotelName:      "Grand Palace",
			Location:       "Ahmedabad",
			PricePerNight:  100,
			NumberOfGuests: 4,
			Description:    "A double bed room with a city view.",
		},
	})
	sessions := session.NewMemoryStore("You are a hotel booking assistant.")
	return &Finalizer{
		Catalog:  ix,
		Sessions: sessions,
		Chat:     chat,
		Logger:   zap.NewNop(),
		Timeout:  time.Second,
	}, sessions
}

func validDetails() models.BookingDetails {
	return models.BookingDetails{
		HotelName:  "Grand Palace",
		RoomType:   "double room",
		CheckIn:    "2025-05-20",
		CheckOut:   "2025-05-23",
		Guests:     2,
		GuestNames: []string{"Asha", "Ravi"},
		Phone:      "987-654-3210",
		Location:   "Ahmedabad",
	}
}

func TestConfirmValidationRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.BookingDetails)
		message string
	}{
		{
			name:    "malformed check-in",
			mutate:  func(d *models.BookingDetails) { d.CheckIn = "20-05-2025" },
			message: "Incorrect date format! Date format should be YYYY-MM-DD",
		},
		{
			name:    "malformed check-out",
			mutate:  func(d *models.BookingDetails) { d.CheckOut = "May 23rd" },
			message: "Incorrect date format! Date format should be YYYY-MM-DD",
		},
		{
			name:    "check-out equals check-in",
			mutate:  func(d *models.BookingDetails) { d.CheckOut = d.CheckIn },
			message: "Check-out date must be after check-in date",
		},
		{
			name:    "check-out before check-in",
			mutate:  func(d *models.BookingDetails) { d.CheckOut = "2025-05-18" },
			message: "Check-out date must be after check-in date",
		},
		{
			name:    "guest name count mismatch",
			mutate:  func(d *models.BookingDetails) { d.GuestNames = []string{"Asha"} },
			message: "Number of guests must match the number of guest names",
		},
		{
			name:    "unformatted phone",
			mutate:  func(d *models.BookingDetails) { d.Phone = "9876543210" },
			message: "Phone number must be in the XXX-XXX-XXXX format",
		},
		{
			name: "over capacity",
			mutate: func(d *models.BookingDetails) {
				d.Guests = 5
				d.GuestNames = []string{"A", "B", "C", "D", "E"}
			},
			message: "Number of guests (5) exceeds hotel capacity (4)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chat := &fakeChat{reply: "ok"}
			f, _ := newTestFinalizer(chat)

			details := validDetails()
			tc.mutate(&details)

			conf, err := f.Confirm(context.Background(), "sess-1", details)
			assert.Nil(t, conf)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.message, validationErr.Message)
			assert.Zero(t, chat.calls, "rejected bookings must not reach the model")
		})
	}
}

func TestConfirmUnknownHotel(t *testing.T) {
	chat := &fakeChat{reply: "ok"}
	f, _ := newTestFinalizer(chat)

	details := validDetails()
	details.HotelName = "Nowhere Inn"

	conf, err := f.Confirm(context.Background(), "sess-1", details)
	assert.Nil(t, conf)

	var notFoundErr *NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "Selected hotel not found", notFoundErr.Message)
	assert.Zero(t, chat.calls)
}

func TestConfirmExtractsModelPayload(t *testing.T) {
	chat := &fakeChat{reply: `Your booking is confirmed!
{"hotel_name": "Grand Palace", "check_in": "2025-05-20", "check_out": "2025-05-23", "guests": 2, "guest_names": ["Asha", "Ravi"], "phone": "987-654-3210", "location": "Ahmedabad"}
See you soon!`}
	f, sessions := newTestFinalizer(chat)

	conf, err := f.Confirm(context.Background(), "sess-1", validDetails())
	require.NoError(t, err)
	require.NotNil(t, conf)

	assert.True(t, conf.Final)
	assert.Equal(t, chat.reply, conf.Reply)
	assert.Equal(t, "Grand Palace", conf.Payload["hotel_name"])
	assert.Equal(t, "2025-05-20", conf.Payload["check_in"])

	assert.Equal(t, 3, conf.Payload["nights"])
	assert.Equal(t, 100.0, conf.Payload["price_per_night"])
	assert.Equal(t, 300.0, conf.Payload["subtotal"])
	assert.Equal(t, 45.0, conf.Payload["tax"])
	assert.Equal(t, 345.0, conf.Payload["total"])

	// Both the booking request and the reply are recorded on the transcript.
	st, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	require.Len(t, st.Transcript, 3)
	assert.Equal(t, models.RoleUser, st.Transcript[1].Role)
	assert.Contains(t, st.Transcript[1].Content, "Grand Palace")
	assert.Equal(t, models.RoleAssistant, st.Transcript[2].Role)
}

func TestConfirmSynthesizesPayloadFromUnstructuredReply(t *testing.T) {
	chat := &fakeChat{reply: "All set, enjoy your stay!"}
	f, _ := newTestFinalizer(chat)

	conf, err := f.Confirm(context.Background(), "sess-1", validDetails())
	require.NoError(t, err)

	assert.Equal(t, "Grand Palace", conf.Payload["hotel_name"])
	assert.Equal(t, []string{"Asha", "Ravi"}, conf.Payload["guest_names"])
	assert.Equal(t, "987-654-3210", conf.Payload["phone"])
	assert.Equal(t, 3, conf.Payload["nights"])
	assert.Equal(t, 345.0, conf.Payload["total"])
}

func TestConfirmIgnoresIncompleteJSONBlock(t *testing.T) {
	// The reply carries a brace-delimited span missing required fields, so
	// the payload falls back to synthesis.
	chat := &fakeChat{reply: `Done! {"hotel_name": "Grand Palace"}`}
	f, _ := newTestFinalizer(chat)

	conf, err := f.Confirm(context.Background(), "sess-1", validDetails())
	require.NoError(t, err)

	assert.Equal(t, 2, conf.Payload["guests"])
	assert.Equal(t, "Ahmedabad", conf.Payload["location"])
}

func TestConfirmFallsBackWhenModelFails(t *testing.T) {
	chat := &fakeChat{err: errors.New("connection refused")}
	f, sessions := newTestFinalizer(chat)

	conf, err := f.Confirm(context.Background(), "sess-1", validDetails())
	require.NoError(t, err)

	assert.True(t, conf.Final)
	assert.Contains(t, conf.Reply, "Booking confirmed for Grand Palace!")
	assert.Equal(t, 3, conf.Payload["nights"])
	assert.Equal(t, 300.0, conf.Payload["subtotal"])

	st, serr := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, serr)
	assert.Equal(t, conf.Reply, st.Transcript[len(st.Transcript)-1].Content)
}

func TestComputeQuote(t *testing.T) {
	checkIn, _ := time.Parse("2006-01-02", "2025-05-20")
	checkOut, _ := time.Parse("2006-01-02", "2025-05-23")

	q := ComputeQuote(checkIn, checkOut, 100)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, 300.0, q.Subtotal)
	assert.Equal(t, 45.0, q.Tax)
	assert.Equal(t, 345.0, q.Total)
}

func TestComputeQuoteRoundsTaxToCents(t *testing.T) {
	checkIn, _ := time.Parse("2006-01-02", "2025-05-20")
	checkOut, _ := time.Parse("2006-01-02", "2025-05-22")

	q := ComputeQuote(checkIn, checkOut, 99.99)
	assert.Equal(t, 2, q.Nights)
	assert.Equal(t, 199.98, q.Subtotal)
	assert.Equal(t, 30.0, q.Tax)
	assert.InDelta(t, 229.98, q.Total, 0.0001)
}
