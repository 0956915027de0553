package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"innkeeper/models"
)

// Index holds the immutable hotel catalog and the derived location keyword
// list. Keywords are sorted longest-first so that substring matching against
// a message is deterministic: when several keywords occur, the longest wins.
type Index struct {
	hotels   []models.HotelRecord
	keywords []string
}

// NewIndex builds the catalog index from the loaded records.
func NewIndex(hotels []models.HotelRecord) *Index {
	seen := make(map[string]struct{})
	var keywords []string
	for _, h := range hotels {
		for _, part := range strings.Split(strings.ToLower(h.Location), ",") {
			clean := strings.TrimSpace(part)
			if clean == "" {
				continue
			}
			if _, ok := seen[clean]; ok {
				continue
			}
			seen[clean] = struct{}{}
			keywords = append(keywords, clean)
		}
	}
	sort.Slice(keywords, func(i, j int) bool {
		if len(keywords[i]) != len(keywords[j]) {
			return len(keywords[i]) > len(keywords[j])
		}
		return keywords[i] < keywords[j]
	})
	return &Index{hotels: hotels, keywords: keywords}
}

// All returns every catalog record.
func (ix *Index) All() []models.HotelRecord {
	return ix.hotels
}

// LocationKeywords returns the deduplicated lower-cased location fragments,
// longest first.
func (ix *Index) LocationKeywords() []string {
	return ix.keywords
}

// ByLocation filters records whose location contains the given substring,
// case-insensitively. An empty location returns the full catalog.
func (ix *Index) ByLocation(location string) []models.HotelRecord {
	if location == "" {
		return ix.hotels
	}
	needle := strings.ToLower(location)
	var out []models.HotelRecord
	for _, h := range ix.hotels {
		if strings.Contains(strings.ToLower(h.Location), needle) {
			out = append(out, h)
		}
	}
	return out
}

// ByName returns the first record whose name matches exactly. A missing
// hotel is a valid outcome, not an error.
func (ix *Index) ByName(name string) (models.HotelRecord, bool) {
	for _, h := range ix.hotels {
		if h.HotelName == name {
			return h, true
		}
	}
	return models.HotelRecord{}, false
}

// ExtractLocation returns the first catalog location keyword contained in
// the message, title-cased. Keywords are checked longest-first.
func (ix *Index) ExtractLocation(message string) (string, bool) {
	lower := strings.ToLower(message)
	for _, kw := range ix.keywords {
		if strings.Contains(lower, kw) {
			return titleCase(kw), true
		}
	}
	return "", false
}

// RoomTypeLabel sniffs a room-type label from the record's description and
// name, mirroring the listing wording.
func RoomTypeLabel(h models.HotelRecord) string {
	desc := strings.ToLower(h.Description)
	name := strings.ToLower(h.HotelName)
	switch {
	case strings.Contains(desc, "single"):
		return "single room"
	case strings.Contains(desc, "double") || strings.Contains(name, "twin"):
		return "double room"
	case strings.Contains(name, "suite"):
		return "suite"
	default:
		return "room"
	}
}

// FormatListing renders the numbered hotel listing for a location. An empty
// result set yields the fixed no-hotels message instead of a list.
func (ix *Index) FormatListing(location string) string {
	filtered := ix.ByLocation(location)
	if len(filtered) == 0 {
		return fmt.Sprintf("Sorry, we don't have any hotels available in %s. Please try a different location like Dwarka, Ahmedabad, Vadodara, Rajkot, or other major cities.", location)
	}

	var b strings.Builder
	b.WriteString("Fantastic! Here are some available hotel options that match your requirements:\n\n")
	for idx, h := range filtered {
		fmt.Fprintf(&b, "%d. %s – $%s/night\n", idx+1, h.HotelName, formatPrice(h.PricePerNight))
		fmt.Fprintf(&b, "    Location: %s\n", h.Location)
		fmt.Fprintf(&b, "    Capacity: Up to %d guests\n", h.NumberOfGuests)

		description := strings.TrimSpace(h.Description)
		firstSentence := "No description available"
		if description != "" {
			firstSentence = strings.TrimSpace(strings.SplitN(description, ".", 2)[0])
		}
		fmt.Fprintf(&b, "    %s. ", firstSentence)

		switch RoomTypeLabel(h) {
		case "single room":
			b.WriteString("This single room features:\n")
		case "double room":
			b.WriteString("This double room offers:\n")
		case "suite":
			b.WriteString("This suite includes:\n")
		default:
			b.WriteString("This room includes:\n")
		}

		for _, bullet := range listingBullets(h) {
			fmt.Fprintf(&b, "    - %s\n", bullet)
		}
		b.WriteString("\n")
	}
	b.WriteString("Which hotel would you like to choose?")
	return b.String()
}

// listingBullets picks up to three highlights: amenities first, padded from
// facilities, with a generic fallback when both are empty.
func listingBullets(h models.HotelRecord) []string {
	var bullets []string
	if len(h.Amenities) > 0 {
		n := len(h.Amenities)
		if n > 3 {
			n = 3
		}
		bullets = append(bullets, h.Amenities[:n]...)
	}
	if len(bullets) < 3 && len(h.Facilities) > 0 {
		n := 3 - len(bullets)
		if n > len(h.Facilities) {
			n = len(h.Facilities)
		}
		bullets = append(bullets, h.Facilities[:n]...)
	}
	if len(bullets) == 0 {
		bullets = []string{"Modern furnishings", "Great location", "Exceptional service"}
	}
	return bullets
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
