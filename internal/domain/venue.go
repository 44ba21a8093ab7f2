package domain

// Venue площадка сети. Закрытый enum - ровно две известные площадки.
type Venue string

const (
	VenueDowntown  Venue = "downtown"
	VenueRiverside Venue = "riverside"
)

// KnownVenues список всех известных площадок
var KnownVenues = []Venue{
	VenueDowntown,
	VenueRiverside,
}

// IsValid возвращает true, если площадка входит в закрытый список
func (v Venue) IsValid() bool {
	for _, known := range KnownVenues {
		if v == known {
			return true
		}
	}
	return false
}
