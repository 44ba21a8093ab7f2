package domain

import (
	"time"

	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// Booth караоке-кабинка - бронируемый физический ресурс.
// Создается и редактируется staff-инструментами, для ядра бронирования read-only.
type Booth struct {
	ID         string // UUID
	Venue      Venue
	Name       string
	Capacity   int
	HourlyRate float64

	// Рабочие часы кабинки (слоты генерируются только внутри этого окна)
	OpenTime  types.TimeString
	CloseTime types.TimeString

	// Отключенные/удаленные кабинки исключаются из подбора слотов
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable возвращает true, если кабинка доступна для бронирования
func (b *Booth) IsBookable() bool {
	return b.IsActive && b.Capacity > 0
}

// CanFit возвращает true, если вместимость кабинки не меньше требуемой
func (b *Booth) CanFit(guests int) bool {
	return b.Capacity >= guests
}

// IsWithinOperatingHours возвращает true, если окно [start, end) целиком
// лежит внутри рабочих часов кабинки
func (b *Booth) IsWithinOperatingHours(start, end types.TimeString) bool {
	return !start.IsBefore(b.OpenTime) && !end.IsAfter(b.CloseTime)
}
