package hold_actions

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	createHold "github.com/m04kA/KBS-ReservationService/internal/usecase/create_hold"
	extendHold "github.com/m04kA/KBS-ReservationService/internal/usecase/extend_hold"
	releaseHold "github.com/m04kA/KBS-ReservationService/internal/usecase/release_hold"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// Закрытый набор действий над холдами
const (
	ActionCreate  = "create"
	ActionExtend  = "extend"
	ActionRelease = "release"
)

// HoldActionRequest HTTP request model для POST /holds.
// Поля объединяют все три действия; какие из них обязательны,
// решает типизированный обработчик конкретного действия.
type HoldActionRequest struct {
	Action string `json:"action"`

	// create
	BoothID       string  `json:"boothId,omitempty"`
	Venue         string  `json:"venue,omitempty"`
	BookingDate   string  `json:"bookingDate,omitempty"` // "2026-03-14"
	StartTime     string  `json:"startTime,omitempty"`   // "18:00"
	EndTime       string  `json:"endTime,omitempty"`     // "19:00"
	CustomerEmail *string `json:"customerEmail,omitempty"`

	// create + extend; nil = TTL не указан, берется дефолт
	TTLMinutes *int `json:"ttlMinutes,omitempty"`

	// extend + release
	HoldID string `json:"holdId,omitempty"`

	// все действия
	SessionID string `json:"sessionId"`
}

// HoldResponse HTTP response model холда
type HoldResponse struct {
	ID            string  `json:"id"`
	BoothID       string  `json:"boothId"`
	Venue         string  `json:"venue"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	SessionID     string  `json:"sessionId"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	Status        string  `json:"status"`
	ExpiresAt     *string `json:"expiresAt,omitempty"`
}

// HoldActionResponse envelope успешного ответа
type HoldActionResponse struct {
	Success bool          `json:"success"`
	Hold    *HoldResponse `json:"hold"`
}

// ToCreateRequest конвертирует HTTP запрос в модель create_hold use case
func (r *HoldActionRequest) ToCreateRequest() (*createHold.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createHold.Request{
		BoothID:       r.BoothID,
		Venue:         domain.Venue(r.Venue),
		Date:          date,
		StartTime:     startTime,
		EndTime:       endTime,
		SessionID:     r.SessionID,
		CustomerEmail: r.CustomerEmail,
		TTLMinutes:    r.TTLMinutes,
	}, nil
}

// ToExtendRequest конвертирует HTTP запрос в модель extend_hold use case
func (r *HoldActionRequest) ToExtendRequest() *extendHold.Request {
	return &extendHold.Request{
		HoldID:     r.HoldID,
		SessionID:  r.SessionID,
		TTLMinutes: r.TTLMinutes,
	}
}

// ToReleaseRequest конвертирует HTTP запрос в модель release_hold use case
func (r *HoldActionRequest) ToReleaseRequest() *releaseHold.Request {
	return &releaseHold.Request{
		HoldID:    r.HoldID,
		SessionID: r.SessionID,
	}
}

// FromCreateResponse конвертирует ответ create_hold use case в HTTP response
func FromCreateResponse(resp *createHold.Response) *HoldActionResponse {
	expiresAt := resp.ExpiresAt.UTC().Format(time.RFC3339)
	return &HoldActionResponse{
		Success: true,
		Hold: &HoldResponse{
			ID:            resp.ID,
			BoothID:       resp.BoothID,
			Venue:         string(resp.Venue),
			Date:          resp.Date.Format(domain.DateFormat),
			StartTime:     resp.StartTime.String(),
			EndTime:       resp.EndTime.String(),
			SessionID:     resp.SessionID,
			CustomerEmail: resp.CustomerEmail,
			Status:        resp.Status,
			ExpiresAt:     &expiresAt,
		},
	}
}

// FromExtendResponse конвертирует ответ extend_hold use case в HTTP response
func FromExtendResponse(resp *extendHold.Response) *HoldActionResponse {
	expiresAt := resp.ExpiresAt.UTC().Format(time.RFC3339)
	return &HoldActionResponse{
		Success: true,
		Hold: &HoldResponse{
			ID:        resp.ID,
			BoothID:   resp.BoothID,
			Venue:     string(resp.Venue),
			Date:      resp.Date.Format(domain.DateFormat),
			StartTime: resp.StartTime.String(),
			EndTime:   resp.EndTime.String(),
			SessionID: resp.SessionID,
			Status:    resp.Status,
			ExpiresAt: &expiresAt,
		},
	}
}

// FromReleaseResponse конвертирует ответ release_hold use case в HTTP response
func FromReleaseResponse(resp *releaseHold.Response) *HoldActionResponse {
	return &HoldActionResponse{
		Success: true,
		Hold: &HoldResponse{
			ID:        resp.ID,
			BoothID:   resp.BoothID,
			Venue:     string(resp.Venue),
			Date:      resp.Date.Format(domain.DateFormat),
			StartTime: resp.StartTime.String(),
			EndTime:   resp.EndTime.String(),
			SessionID: resp.SessionID,
			Status:    resp.Status,
		},
	}
}
