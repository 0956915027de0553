package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasDateSignal(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"MonthName", "I need a hotel from May 20 to May 25", true},
		{"NumericDate", "arriving 20/05/2025", true},
		{"ISODate", "check-in 2025-05-20 please", true},
		{"FromTo", "from monday to friday", true},
		{"CheckInDigit", "checkin on the 20th", true},
		{"NoSignal", "I need a hotel in Ahmedabad", false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasDateSignal(tt.message))
		})
	}
}

func TestExtractISODate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		date, match := ExtractISODate("I'll check in on 2025-05-20 if that works")
		assert.Equal(t, DateValid, match)
		assert.Equal(t, "2025-05-20", date)
	})

	t.Run("LexicalMatchInvalidCalendarDate", func(t *testing.T) {
		date, match := ExtractISODate("checkout on 2025-13-40")
		assert.Equal(t, DateInvalid, match)
		assert.Empty(t, date)
	})

	t.Run("NoMatch", func(t *testing.T) {
		_, match := ExtractISODate("May 20th")
		assert.Equal(t, DateNone, match)
	})

	t.Run("FirstMatchWins", func(t *testing.T) {
		date, match := ExtractISODate("2025-05-20 to 2025-05-25")
		assert.Equal(t, DateValid, match)
		assert.Equal(t, "2025-05-20", date)
	})
}

func TestExtractGuestCount(t *testing.T) {
	n, ok := ExtractGuestCount("we are 3 people")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = ExtractGuestCount("just 0")
	assert.True(t, ok)
	assert.Equal(t, 0, n)

	_, ok = ExtractGuestCount("a couple of us")
	assert.False(t, ok)
}

func TestExtractPhone(t *testing.T) {
	phone, ok := ExtractPhone("call me at 123-456-7890 anytime")
	assert.True(t, ok)
	assert.Equal(t, "123-456-7890", phone)

	_, ok = ExtractPhone("1234567890")
	assert.False(t, ok)

	_, ok = ExtractPhone("12-34-5678")
	assert.False(t, ok)
}

func TestGuestName(t *testing.T) {
	assert.Equal(t, "John Doe", GuestName("  John Doe  "))
	assert.Empty(t, GuestName("   "))
}
