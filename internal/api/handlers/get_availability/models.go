package get_availability

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	getAvailability "github.com/m04kA/KBS-ReservationService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Venue              string   `json:"venue"`
	Date               string   `json:"date"`
	GranularityMinutes int      `json:"granularityMinutes"`
	Windows            []Window `json:"windows"`
}

// Window окно расписания с доступными кабинками
type Window struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Available bool    `json:"available"`
	Booths    []Booth `json:"booths"`
	TooSmall  []Booth `json:"tooSmall,omitempty"`
}

// Booth краткая информация о кабинке в окне
type Booth struct {
	BoothID  string `json:"boothId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(venue, dateStr string, granularity, minCapacity int) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Venue:              domain.Venue(venue),
		Date:               date,
		GranularityMinutes: granularity,
		MinCapacity:        minCapacity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	windows := make([]Window, len(resp.Windows))
	for i, w := range resp.Windows {
		windows[i] = Window{
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
			Available: w.IsAvailable(),
			Booths:    toBooths(w.AvailableBooths),
			TooSmall:  toBooths(w.TooSmallBooths),
		}
	}

	return &AvailabilityResponse{
		Venue:              string(resp.Venue),
		Date:               resp.Date.Format(domain.DateFormat),
		GranularityMinutes: resp.GranularityMinutes,
		Windows:            windows,
	}
}

func toBooths(options []domain.BoothOption) []Booth {
	booths := make([]Booth, len(options))
	for i, opt := range options {
		booths[i] = Booth{
			BoothID:  opt.BoothID,
			Name:     opt.Name,
			Capacity: opt.Capacity,
		}
	}
	return booths
}
