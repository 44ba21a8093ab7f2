package finalize_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	bookingRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/booking"
	boothRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/booth"
	holdRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/hold"
)

// UseCase use case финализации: конвертация активного холда в confirmed-бронирование.
//
// Стратегия - optimistic insert-then-reconcile: бронирование вставляется без
// блокировок, гонку за слот разрешает частичный уникальный индекс БД, а
// проигравший перечитывает и принимает бронирование победителя. Единственный
// автоматический ретрай во всей системе - одна повторная проба после
// конфликта вставки.
type UseCase struct {
	holdRepo     HoldRepository
	bookingRepo  BookingRepository
	boothRepo    BoothRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	holdRepo HoldRepository,
	bookingRepo BookingRepository,
	boothRepo BoothRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		holdRepo:     holdRepo,
		bookingRepo:  bookingRepo,
		boothRepo:    boothRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case финализации.
// Безопасен к ретраям: повторный вызов с тем же holdId возвращает тот же
// bookingId и не создает вторую строку бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FinalizeBooking: hold=%q, session=%q, customer=%s", req.HoldID, req.SessionID, req.CustomerName)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FinalizeBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Находим холд: по id напрямую или самый свежий активный холд сессии
	h, err := uc.lookupHold(ctx, req, now)
	if err != nil {
		return nil, err
	}

	// 2.1. Ретрай уже завершенной финализации: холд потреблен и ссылается
	// на бронирование - возвращаем его, ничего не вставляя
	if h.Status == domain.HoldStatusConsumed && h.BookingID != nil {
		uc.logger.Info("FinalizeBooking: hold id=%s already consumed by booking id=%d (retry)", h.ID, *h.BookingID)

		consumed, err := uc.bookingRepo.GetByID(ctx, *h.BookingID)
		if err != nil {
			uc.logger.Error("FinalizeBooking: failed to get booking id=%d for consumed hold id=%s: %v",
				*h.BookingID, h.ID, err)
			return nil, fmt.Errorf("%w: failed to get booking for consumed hold: %v", ErrInternal, err)
		}
		return uc.adoptedResponse(h, consumed.ID, consumed.DurationMinutes, consumed.TotalAmount), nil
	}

	// Снятый, потребленный без ссылки или истекший холд конвертировать нечем
	if !h.IsUsable(now) {
		uc.logger.Warn("FinalizeBooking: hold id=%s is not usable (status=%s, expires_at=%s)",
			h.ID, h.Status, h.ExpiresAt)
		return nil, ErrHoldNotFound
	}

	// 3. Кабинка нужна ради hourly rate
	booth, err := uc.boothRepo.GetByID(ctx, h.BoothID)
	if err != nil {
		if errors.Is(err, boothRepo.ErrBoothNotFound) {
			uc.logger.Warn("FinalizeBooking: booth id=%s not found for hold id=%s", h.BoothID, h.ID)
			return nil, ErrBoothNotFound
		}
		uc.logger.Error("FinalizeBooking: failed to get booth id=%s: %v", h.BoothID, err)
		return nil, fmt.Errorf("%w: failed to get booth: %v", ErrInternal, err)
	}

	// 4. Цена: длительность в минутах (end < start обрезается до 0) * hourly rate
	duration, err := durationMinutes(h.StartTime, h.EndTime)
	if err != nil {
		uc.logger.Error("FinalizeBooking: failed to compute duration for hold id=%s: %v", h.ID, err)
		return nil, fmt.Errorf("%w: failed to compute duration: %v", ErrInternal, err)
	}
	totalAmount := booth.HourlyRate * float64(duration) / 60

	// 5. Шаг 1 протокола: проба до вставки - дубликат/ретрай обнаруживается
	// по уже существующему confirmed-бронированию на слот
	existing, err := uc.probeExistingBooking(ctx, h)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.logger.Info("FinalizeBooking: adopting existing booking id=%d for hold id=%s", existing.ID, h.ID)
		uc.consumeHold(ctx, h.ID, existing.ID)
		return uc.adoptedResponse(h, existing.ID, existing.DurationMinutes, existing.TotalAmount), nil
	}

	// 6. Шаг 2: оптимистичная вставка
	newBooking := &domain.Booking{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		BookingType:     domain.BookingTypeKaraoke,
		Venue:           h.Venue,
		BoothID:         h.BoothID,
		BookingDate:     h.BookingDate,
		StartTime:       h.StartTime,
		EndTime:         h.EndTime,
		DurationMinutes: duration,
		GuestCount:      req.GuestCount,
		TotalAmount:     totalAmount,
		Status:          domain.StatusConfirmed,
		PaymentStatus:   domain.PaymentUnpaid,
	}

	created, err := uc.bookingRepo.Create(ctx, newBooking)
	if err != nil {
		if !errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			uc.logger.Error("FinalizeBooking: failed to create booking for hold id=%s: %v", h.ID, err)
			return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 7. Шаг 3: конкурирующий finalize выиграл гонку за слот -
		// единственный автоматический ретрай: перечитываем победителя
		uc.logger.Warn("FinalizeBooking: insert lost the race for booth=%s %s %s-%s, re-probing winner",
			h.BoothID, h.BookingDate.Format(domain.DateFormat), h.StartTime, h.EndTime)

		winner, probeErr := uc.probeExistingBooking(ctx, h)
		if probeErr != nil {
			return nil, probeErr
		}
		if winner == nil {
			// Вставка упала по уникальности, но победителя не видно -
			// неразрешимый конфликт, состояние не менялось
			uc.logger.Error("FinalizeBooking: insert conflicted but no winner found for hold id=%s", h.ID)
			return nil, ErrConflict
		}

		uc.logger.Info("FinalizeBooking: adopting race winner booking id=%d for hold id=%s", winner.ID, h.ID)
		uc.consumeHold(ctx, h.ID, winner.ID)
		return uc.adoptedResponse(h, winner.ID, winner.DurationMinutes, winner.TotalAmount), nil
	}

	// 8. Шаг 4: чистая вставка - потребляем холд со ссылкой на новое бронирование
	uc.consumeHold(ctx, h.ID, created.ID)

	uc.logger.Info("FinalizeBooking: successfully created booking id=%d from hold id=%s, total=%.2f",
		created.ID, h.ID, created.TotalAmount)

	return &Response{
		BookingID:       created.ID,
		Created:         true,
		HoldID:          h.ID,
		BoothID:         h.BoothID,
		Venue:           h.Venue,
		Date:            h.BookingDate,
		StartTime:       h.StartTime,
		EndTime:         h.EndTime,
		DurationMinutes: created.DurationMinutes,
		TotalAmount:     created.TotalAmount,
	}, nil
}

// lookupHold находит целевой холд: по id напрямую (любой статус - ретраи
// должны видеть уже потребленный холд), либо самый свежий активный
// неистекший холд указанной сессии.
func (uc *UseCase) lookupHold(ctx context.Context, req *Request, now time.Time) (*domain.Hold, error) {
	if req.HoldID != "" {
		h, err := uc.holdRepo.GetByID(ctx, req.HoldID)
		if err != nil {
			if errors.Is(err, holdRepo.ErrHoldNotFound) {
				uc.logger.Warn("FinalizeBooking: hold id=%s not found", req.HoldID)
				return nil, ErrHoldNotFound
			}
			uc.logger.Error("FinalizeBooking: failed to get hold id=%s: %v", req.HoldID, err)
			return nil, fmt.Errorf("%w: failed to get hold: %v", ErrInternal, err)
		}
		return h, nil
	}

	h, err := uc.holdRepo.GetLatestActiveBySession(ctx, req.SessionID, now)
	if err != nil {
		if errors.Is(err, holdRepo.ErrHoldNotFound) {
			uc.logger.Warn("FinalizeBooking: no active hold for session=%s", req.SessionID)
			return nil, ErrHoldNotFound
		}
		uc.logger.Error("FinalizeBooking: failed to find hold for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to find hold by session: %v", ErrInternal, err)
	}
	return h, nil
}

// probeExistingBooking ищет confirmed-бронирование на слот холда.
// Отсутствие бронирования - не ошибка, возвращается (nil, nil).
func (uc *UseCase) probeExistingBooking(ctx context.Context, h *domain.Hold) (*domain.Booking, error) {
	existing, err := uc.bookingRepo.GetConfirmedBySlot(ctx, h.BoothID, h.BookingDate, h.StartTime, h.EndTime)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, nil
		}
		uc.logger.Error("FinalizeBooking: probe failed for hold id=%s: %v", h.ID, err)
		return nil, fmt.Errorf("%w: probe for existing booking failed: %v", ErrInternal, err)
	}
	return existing, nil
}

// consumeHold помечает холд потребленным. Ноль затронутых строк безвреден:
// конкурирующий ретрай мог уже потребить холд - итоговое состояние то же.
func (uc *UseCase) consumeHold(ctx context.Context, holdID string, bookingID int64) {
	err := uc.holdRepo.Consume(ctx, holdID, bookingID)
	if err == nil {
		return
	}
	if errors.Is(err, holdRepo.ErrHoldNotConsumable) {
		uc.logger.Info("FinalizeBooking: hold id=%s already left active state, consume skipped", holdID)
		return
	}
	// Бронирование уже закоммичено: ретрай клиента примет его через пробу,
	// поэтому ошибку потребления не превращаем в отказ
	uc.logger.Error("FinalizeBooking: failed to consume hold id=%s: %v", holdID, err)
}

func (uc *UseCase) adoptedResponse(h *domain.Hold, bookingID int64, duration int, total float64) *Response {
	return &Response{
		BookingID:       bookingID,
		Created:         false,
		HoldID:          h.ID,
		BoothID:         h.BoothID,
		Venue:           h.Venue,
		Date:            h.BookingDate,
		StartTime:       h.StartTime,
		EndTime:         h.EndTime,
		DurationMinutes: duration,
		TotalAmount:     total,
	}
}
