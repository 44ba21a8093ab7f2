package domain

import "github.com/m04kA/KBS-ReservationService/pkg/types"

// BoothOption кабинка, доступная (или слишком маленькая) в конкретном окне
type BoothOption struct {
	BoothID  string
	Name     string
	Capacity int
}

// SlotWindow окно расписания с рассчитанной доступностью кабинок.
// Полностью занятые окна не выбрасываются из выдачи, а помечаются
// Available=false - UI показывает их как "fully booked".
type SlotWindow struct {
	StartTime types.TimeString
	EndTime   types.TimeString

	// Кабинки без конфликтов по бронированиям/холдам и с достаточной вместимостью
	AvailableBooths []BoothOption

	// Кабинки свободные по времени, но меньше запрошенной вместимости (информационно)
	TooSmallBooths []BoothOption
}

// IsAvailable возвращает true, если в окне свободна хотя бы одна кабинка
func (w *SlotWindow) IsAvailable() bool {
	return len(w.AvailableBooths) > 0
}

// Overlaps проверяет пересечение полуоткрытых интервалов [start, end).
// Граничащие интервалы (конец одного равен началу другого) не пересекаются.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && aEnd.IsAfter(bStart)
}
