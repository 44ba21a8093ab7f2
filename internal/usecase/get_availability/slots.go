package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	"github.com/m04kA/KBS-ReservationService/pkg/types"
)

// buildWindows строит сетку окон по всем активным кабинкам площадки.
// Сетка начинается с самого раннего открытия и идет шагом granularity
// до самого позднего закрытия; кабинка попадает в окно только если оно
// целиком внутри ее рабочих часов.
func buildWindows(
	booths []*domain.Booth,
	bookings []*domain.Booking,
	holds []*domain.Hold,
	granularityMinutes int,
	minCapacity int,
	now time.Time,
) ([]domain.SlotWindow, error) {
	if len(booths) == 0 {
		return []domain.SlotWindow{}, nil
	}

	gridStart, gridEnd, err := gridBounds(booths)
	if err != nil {
		return nil, err
	}

	// Просроченные холды не блокируют слоты независимо от того,
	// успел ли их подмести фоновый процесс.
	usableHolds := make([]*domain.Hold, 0, len(holds))
	for _, h := range holds {
		if h.IsUsable(now) {
			usableHolds = append(usableHolds, h)
		}
	}

	windows := make([]domain.SlotWindow, 0)
	for start := gridStart; start+granularityMinutes <= gridEnd; start += granularityMinutes {
		end := start + granularityMinutes
		startTS := minutesToTimeString(start)
		endTS := minutesToTimeString(end)

		window := domain.SlotWindow{
			StartTime:       startTS,
			EndTime:         endTS,
			AvailableBooths: []domain.BoothOption{},
			TooSmallBooths:  []domain.BoothOption{},
		}

		for _, booth := range booths {
			if !booth.IsWithinOperatingHours(startTS, endTS) {
				continue
			}
			if isBoothBlocked(booth.ID, startTS, endTS, bookings, usableHolds) {
				continue
			}

			option := domain.BoothOption{BoothID: booth.ID, Name: booth.Name, Capacity: booth.Capacity}
			if minCapacity > 0 && booth.Capacity < minCapacity {
				window.TooSmallBooths = append(window.TooSmallBooths, option)
			} else {
				window.AvailableBooths = append(window.AvailableBooths, option)
			}
		}

		windows = append(windows, window)
	}

	return windows, nil
}

// gridBounds возвращает границы сетки в минутах от полуночи:
// минимальное открытие и максимальное закрытие среди кабинок.
func gridBounds(booths []*domain.Booth) (int, int, error) {
	start := 24 * 60
	end := 0

	for _, b := range booths {
		open, err := b.OpenTime.Minutes()
		if err != nil {
			return 0, 0, fmt.Errorf("booth %s: invalid open_time: %w", b.ID, err)
		}
		closeM, err := b.CloseTime.Minutes()
		if err != nil {
			return 0, 0, fmt.Errorf("booth %s: invalid close_time: %w", b.ID, err)
		}

		if open < start {
			start = open
		}
		if closeM > end {
			end = closeM
		}
	}

	return start, end, nil
}

// isBoothBlocked проверяет пересечение окна с подтвержденными бронями
// и живыми холдами кабинки. Интервалы полуоткрытые: [start, end).
func isBoothBlocked(boothID string, start, end types.TimeString, bookings []*domain.Booking, holds []*domain.Hold) bool {
	for _, b := range bookings {
		if b.BoothID == boothID && domain.Overlaps(start, end, b.StartTime, b.EndTime) {
			return true
		}
	}
	for _, h := range holds {
		if h.BoothID == boothID && domain.Overlaps(start, end, h.StartTime, h.EndTime) {
			return true
		}
	}
	return false
}

func minutesToTimeString(minutes int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}
