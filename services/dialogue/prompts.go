package dialogue

// SystemPrompt seeds every session transcript exactly once.
const SystemPrompt = `You are a hotel booking assistant for a hotel. Follow this flow:
1. Welcome the user and ask for their hotel booking requirements (e.g., location and dates).
2. When the user mentions BOTH a location AND dates (e.g., "I need a hotel in Gujarat from May 20 to May 25"), respond with available hotel options. DO NOT show hotels unless BOTH location and dates are mentioned together.
3. Once the user selects a hotel by mentioning its name, confirm the selection and start collecting booking details one at a time:
   - First, ask for the check-in date (format: YYYY-MM-DD). If the user provides it, confirm and proceed.
   - Next, ask for the check-out date (format: YYYY-MM-DD). If provided, confirm and proceed.
   - Then, ask for the number of guests. If provided, confirm and proceed. Ensure the number of guests does not exceed the hotel's capacity.
   - Then, ask for the guest names (one name at a time, e.g., "John Doe", then "Jane Smith"). Collect names based on the number of guests.
   - Finally, ask for the phone number (format: XXX-XXX-XXXX). If provided, confirm and proceed.
4. After collecting each detail, confirm it and ask for the next one. If the user provides an invalid format, ask them to provide it again in the correct format.
5. Once all details are collected, give a summary of the booking details and ask for confirmation.

IMPORTANT: Only show hotel options when BOTH location AND dates are mentioned in the same message or conversation context.`

// Fixed replies used when the conversational model is skipped or fails.
const (
	clarifyBothMissing = "I'd be happy to help you find a hotel! Could you please tell me which location you're interested in and your travel dates?"
	clarifyNoLocation  = "Great! I see you have dates in mind. Which location would you like to stay in?"
	clarifyNoDatesFmt  = "Perfect! I can help you find hotels in %s. What are your check-in and check-out dates?"

	troubleReply = "I'm sorry, I'm having trouble processing your request. Please try again."

	promptCheckIn        = "Please provide your check-in date in YYYY-MM-DD format (e.g., 2025-05-20)."
	invalidCheckIn       = "Invalid date format. " + promptCheckIn
	promptCheckOut       = "Please provide your check-out date in YYYY-MM-DD format (e.g., 2025-05-25)."
	invalidCheckOut      = "Invalid date format. " + promptCheckOut
	promptGuestCount     = "Please provide the number of guests as a number (e.g., 2)."
	invalidGuestCount    = "Please provide a valid number of guests (greater than 0)."
	promptPhone          = "Please provide your phone number in XXX-XXX-XXXX format (e.g., 123-456-7890)."
	bookingAcknowledged  = "Thank you for providing your details. I'll process your booking now."
	capacityExceededFmt  = "Sorry, this hotel can only accommodate up to %d guests. Please provide a number of guests within this limit."
	checkInConfirmedFmt  = "Check-in date set to %s. " + promptCheckOut
	checkOutConfirmedFmt = "Check-out date set to %s. How many guests will be staying? (Max: %d)"
	guestCountFmt        = "Got it, %d guests. Please provide the name of guest 1."
	nextGuestNameFmt     = "Guest %d name recorded as %s. Please provide the name of guest %d."
	lastGuestNameFmt     = "Guest %d name recorded as %s. All guest names collected. " + promptPhone
	askGuestNameFmt      = "Please provide the name of guest %d."

	hotelSelectedFmt = "You selected %s in %s.\nCapacity: Up to %d guests\nAmenities: %s\nFacilities: %s\n" + promptCheckIn
)
