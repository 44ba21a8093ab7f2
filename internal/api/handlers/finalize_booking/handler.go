package finalize_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/KBS-ReservationService/internal/api/handlers"
	finalizeBooking "github.com/m04kA/KBS-ReservationService/internal/usecase/finalize_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgHoldNotFound       = "холд не найден или истек"
	msgBoothNotFound      = "кабинка не найдена"
	msgWriteConflict      = "конфликт записи, повторите запрос"
)

type Handler struct {
	useCase FinalizeBookingUseCase
	logger  Logger
}

func NewHandler(useCase FinalizeBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/finalize
//
// 201 - создано новое бронирование, 200 - принято уже существующее
// (ретрай того же холда или проигранная гонка за слот).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FinalizeBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/finalize - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, finalizeBooking.ErrHoldNotFound):
			h.logger.Warn("POST /bookings/finalize - Hold not found: hold=%s, session=%s",
				req.HoldID, req.SessionID)
			handlers.RespondNotFound(w, msgHoldNotFound)

		case errors.Is(err, finalizeBooking.ErrBoothNotFound):
			h.logger.Warn("POST /bookings/finalize - Booth not found: hold=%s", req.HoldID)
			handlers.RespondNotFound(w, msgBoothNotFound)

		case errors.Is(err, finalizeBooking.ErrConflict):
			h.logger.Warn("POST /bookings/finalize - Write conflict: hold=%s", req.HoldID)
			handlers.RespondError(w, http.StatusConflict, msgWriteConflict)

		case errors.Is(err, finalizeBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/finalize - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/finalize - Failed: hold=%s, session=%s, error=%v",
				req.HoldID, req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /bookings/finalize - Booking finalized: booking=%d, hold=%s, created=%t",
		result.BookingID, result.HoldID, result.Created)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
