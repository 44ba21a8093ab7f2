package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
)

// UseCase use case для расчета доступности кабинок площадки на дату
type UseCase struct {
	boothRepo    BoothRepository
	bookingRepo  BookingRepository
	holdRepo     HoldRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	boothRepo BoothRepository,
	bookingRepo BookingRepository,
	holdRepo HoldRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		boothRepo:    boothRepo,
		bookingRepo:  bookingRepo,
		holdRepo:     holdRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчета доступности.
// Расчет чисто читающий: просроченные холды отфильтровываются в памяти,
// ничего не пишем и не подметаем.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: venue=%s, date=%s, granularity=%d, minCapacity=%d",
		req.Venue, req.Date.Format(domain.DateFormat), req.GranularityMinutes, req.MinCapacity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	granularity, err := normalizeGranularity(req.GranularityMinutes)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем активные кабинки площадки
	booths, err := uc.boothRepo.ListActiveByVenue(ctx, req.Venue)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list booths for venue=%s: %v", req.Venue, err)
		return nil, fmt.Errorf("%w: failed to list booths: %v", ErrInternal, err)
	}

	// Площадка без активных кабинок - пустая выдача, не ошибка
	if len(booths) == 0 {
		uc.logger.Info("GetAvailability: no active booths for venue=%s", req.Venue)
		return &Response{
			Venue:              req.Venue,
			Date:               req.Date,
			GranularityMinutes: granularity,
			Windows:            []domain.SlotWindow{},
		}, nil
	}

	// 4. Получаем подтвержденные брони на дату
	bookings, err := uc.bookingRepo.ListConfirmedByVenueDate(ctx, req.Venue, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings for venue=%s: %v", req.Venue, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 5. Получаем живые холды на дату
	holds, err := uc.holdRepo.ListActiveByVenueDate(ctx, req.Venue, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list holds for venue=%s: %v", req.Venue, err)
		return nil, fmt.Errorf("%w: failed to list holds: %v", ErrInternal, err)
	}

	// 6. Строим сетку окон
	windows, err := buildWindows(booths, bookings, holds, granularity, req.MinCapacity, now)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to build windows for venue=%s: %v", req.Venue, err)
		return nil, fmt.Errorf("%w: failed to build windows: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: generated %d windows for venue=%s, date=%s",
		len(windows), req.Venue, req.Date.Format(domain.DateFormat))

	return &Response{
		Venue:              req.Venue,
		Date:               req.Date,
		GranularityMinutes: granularity,
		Windows:            windows,
	}, nil
}
