package domain

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// HoldStatus статус холда
type HoldStatus string

const (
	// HoldStatusActive холд удерживает слот (пока не истек expires_at)
	HoldStatusActive HoldStatus = "active"

	// HoldStatusReleased холд снят клиентом или фоновой очисткой (терминальный)
	HoldStatusReleased HoldStatus = "released"

	// HoldStatusConsumed холд сконвертирован в подтвержденное бронирование (терминальный)
	HoldStatusConsumed HoldStatus = "consumed"
)

// Hold временный захват слота (кабинка, дата, время) на период оформления
// многошагового бронирования. Принадлежит сессии клиента, а не пользователю:
// session_id - непрозрачный токен, который выбирает сам клиент.
//
// Инвариант: не более одного холда со status=active на кортеж
// (booth_id, booking_date, start_time, end_time) - обеспечивается частичным
// уникальным индексом в БД.
type Hold struct {
	ID      string // UUID
	BoothID string // UUID кабинки

	// Денормализация площадки для выборок по venue без JOIN
	Venue Venue

	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString

	SessionID     string
	CustomerEmail *string

	Status    HoldStatus
	ExpiresAt time.Time

	// Заполняется при status=consumed - ссылка на итоговое бронирование
	BookingID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если холд в статусе active
func (h *Hold) IsActive() bool {
	return h.Status == HoldStatusActive
}

// IsExpired возвращает true, если срок холда истек на момент now.
// Истечение пассивное: строка в БД не меняется, холд просто перестает
// блокировать слот в точках проверки.
func (h *Hold) IsExpired(now time.Time) bool {
	return !h.ExpiresAt.After(now)
}

// IsUsable возвращает true, если холд активен и не истек на момент now
func (h *Hold) IsUsable(now time.Time) bool {
	return h.IsActive() && !h.IsExpired(now)
}

// IsOwnedBy возвращает true, если холд принадлежит указанной сессии
func (h *Hold) IsOwnedBy(sessionID string) bool {
	return h.SessionID == sessionID
}

// ResolveTTLMinutes возвращает фактический TTL холда: nil означает
// "не указан" и дает дефолт, любое явное значение (включая 0) обрезается
// до допустимого диапазона. Молчаливая нормализация, а не ошибка валидации.
func ResolveTTLMinutes(requested *int) int {
	if requested == nil {
		return DefaultHoldTTLMinutes
	}
	return ClampTTLMinutes(*requested)
}

// ClampTTLMinutes приводит запрошенный TTL к допустимому диапазону
// [MinHoldTTLMinutes, MaxHoldTTLMinutes]: 0 обрезается до минуты, не до
// дефолта - явный ноль это просьба о минимальном TTL, а не его отсутствие.
func ClampTTLMinutes(ttlMinutes int) int {
	if ttlMinutes < MinHoldTTLMinutes {
		return MinHoldTTLMinutes
	}
	if ttlMinutes > MaxHoldTTLMinutes {
		return MaxHoldTTLMinutes
	}
	return ttlMinutes
}
