package domain

// Hold TTL defaults and bounds (minutes)
const (
	DefaultHoldTTLMinutes = 10
	MinHoldTTLMinutes     = 1
	MaxHoldTTLMinutes     = 60
)

// Slot granularity bounds (minutes)
const (
	DefaultGranularityMinutes = 60
	MinGranularityMinutes     = 15
	MaxGranularityMinutes     = 240
)

// BookingTypeKaraoke единственный тип бронирования, который пишет это ядро
const BookingTypeKaraoke = "karaoke_booking"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
