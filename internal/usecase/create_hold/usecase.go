package create_hold

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/KBS-ReservationService/internal/domain"
	boothRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/booth"
	holdRepo "github.com/m04kA/KBS-ReservationService/internal/infra/storage/hold"
)

// UseCase use case создания холда на слот
type UseCase struct {
	holdRepo     HoldRepository
	bookingRepo  BookingRepository
	boothRepo    BoothRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	holdRepo HoldRepository,
	bookingRepo BookingRepository,
	boothRepo BoothRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		holdRepo:     holdRepo,
		bookingRepo:  bookingRepo,
		boothRepo:    boothRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания холда.
// Эксклюзивность слота обеспечивается сериализуемой транзакцией поверх
// частичного уникального индекса по активным холдам: при гонке двух create
// ровно один получает вставку, второй - конфликт без ретрая.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// TTL нормализуется молча: nil - дефолт, явное значение обрезается до [1, 60]
	ttlMinutes := domain.ResolveTTLMinutes(req.TTLMinutes)

	uc.logger.Info("CreateHold: booth=%s, venue=%s, date=%s, window=%s-%s, session=%s, ttl=%d",
		req.BoothID, req.Venue, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.SessionID, ttlMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateHold: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateHold: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Проверяем кабинку: существует, активна, принадлежит указанной площадке
	booth, err := uc.boothRepo.GetByID(ctx, req.BoothID)
	if err != nil {
		if errors.Is(err, boothRepo.ErrBoothNotFound) {
			uc.logger.Warn("CreateHold: booth id=%s not found", req.BoothID)
			return nil, ErrBoothNotFound
		}
		uc.logger.Error("CreateHold: failed to get booth id=%s: %v", req.BoothID, err)
		return nil, fmt.Errorf("%w: failed to get booth: %v", ErrInternal, err)
	}

	if !booth.IsBookable() {
		uc.logger.Warn("CreateHold: booth id=%s is disabled", req.BoothID)
		return nil, ErrBoothNotFound
	}

	if booth.Venue != req.Venue {
		uc.logger.Warn("CreateHold: booth id=%s belongs to venue %s, requested %s",
			req.BoothID, booth.Venue, req.Venue)
		return nil, fmt.Errorf("%w: booth does not belong to venue %s", ErrInvalidInput, req.Venue)
	}

	var created *domain.Hold

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Ленивая очистка: снимаем истекший активный холд на этом слоте,
		// чтобы протухшая строка не блокировала частичный уникальный индекс
		if err := uc.holdRepo.ReleaseExpiredOnSlot(txCtx, req.BoothID, req.Date, req.StartTime, req.EndTime, now); err != nil {
			uc.logger.Error("CreateHold: failed to release expired hold on slot: %v", err)
			return fmt.Errorf("%w: failed to release expired hold: %v", ErrInternal, err)
		}

		// 4.2. Холд на слот с существующим confirmed-бронированием не имеет смысла
		taken, err := uc.bookingRepo.ExistsConfirmedOnSlot(txCtx, req.BoothID, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateHold: failed to check confirmed booking: %v", err)
			return fmt.Errorf("%w: failed to check confirmed booking: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateHold: slot booth=%s %s %s-%s already has a confirmed booking",
				req.BoothID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return ErrSlotConflict
		}

		// 4.3. Вставляем холд; гонку разрешает уникальный индекс
		h := &domain.Hold{
			ID:            uuid.NewString(),
			BoothID:       req.BoothID,
			Venue:         req.Venue,
			BookingDate:   req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			SessionID:     req.SessionID,
			CustomerEmail: req.CustomerEmail,
			Status:        domain.HoldStatusActive,
			ExpiresAt:     now.Add(time.Duration(ttlMinutes) * time.Minute),
		}

		created, err = uc.holdRepo.Create(txCtx, h)
		if err != nil {
			if errors.Is(err, holdRepo.ErrHoldConflict) {
				uc.logger.Warn("CreateHold: active hold already exists for booth=%s %s %s-%s",
					req.BoothID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateHold: failed to create hold: %v", err)
			return fmt.Errorf("%w: failed to create hold: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateHold: successfully created hold id=%s, expires_at=%s",
		created.ID, created.ExpiresAt.Format(time.RFC3339))

	return toResponse(created), nil
}
