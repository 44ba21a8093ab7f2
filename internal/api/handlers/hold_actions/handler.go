package hold_actions

import (
	"errors"
	"net/http"

	"github.com/m04kA/KBS-ReservationService/internal/api/handlers"
	createHold "github.com/m04kA/KBS-ReservationService/internal/usecase/create_hold"
	extendHold "github.com/m04kA/KBS-ReservationService/internal/usecase/extend_hold"
	releaseHold "github.com/m04kA/KBS-ReservationService/internal/usecase/release_hold"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownAction      = "неизвестное действие, допустимы: create, extend, release"
	msgInvalidDateTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgBoothNotFound      = "кабинка не найдена"
	msgDateInPast         = "дата бронирования в прошлом"
	msgSlotTaken          = "слот уже занят"
	msgNotExtendable      = "холд не может быть продлен"
	msgNotReleasable      = "холд не может быть снят"
)

type Handler struct {
	createUseCase  CreateHoldUseCase
	extendUseCase  ExtendHoldUseCase
	releaseUseCase ReleaseHoldUseCase
	logger         Logger
}

func NewHandler(
	createUseCase CreateHoldUseCase,
	extendUseCase ExtendHoldUseCase,
	releaseUseCase ReleaseHoldUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		createUseCase:  createUseCase,
		extendUseCase:  extendUseCase,
		releaseUseCase: releaseUseCase,
		logger:         logger,
	}
}

// Handle POST /api/v1/holds
//
// Единая точка входа с закрытым набором действий: тело запроса несет
// поле action, по которому запрос диспатчится в типизированный
// обработчик. За пределами диспатча действия друг о друге не знают.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req HoldActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /holds - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	switch req.Action {
	case ActionCreate:
		h.handleCreate(w, r, &req)
	case ActionExtend:
		h.handleExtend(w, r, &req)
	case ActionRelease:
		h.handleRelease(w, r, &req)
	default:
		h.logger.Warn("POST /holds - Unknown action: %q", req.Action)
		handlers.RespondBadRequest(w, msgUnknownAction)
	}
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request, req *HoldActionRequest) {
	useCaseReq, err := req.ToCreateRequest()
	if err != nil {
		h.logger.Warn("POST /holds [create] - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.createUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createHold.ErrSlotConflict):
			h.logger.Warn("POST /holds [create] - Slot taken: booth=%s, date=%s, start=%s",
				req.BoothID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createHold.ErrBoothNotFound):
			h.logger.Warn("POST /holds [create] - Booth not found: booth=%s", req.BoothID)
			handlers.RespondNotFound(w, msgBoothNotFound)

		case errors.Is(err, createHold.ErrInvalidDate):
			h.logger.Warn("POST /holds [create] - Date in past: date=%s", req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createHold.ErrInvalidInput):
			h.logger.Warn("POST /holds [create] - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /holds [create] - Failed: booth=%s, error=%v", req.BoothID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds [create] - Hold created: hold=%s, booth=%s, expires=%s",
		result.ID, result.BoothID, result.ExpiresAt)
	handlers.RespondJSON(w, http.StatusCreated, FromCreateResponse(result))
}

func (h *Handler) handleExtend(w http.ResponseWriter, r *http.Request, req *HoldActionRequest) {
	result, err := h.extendUseCase.Execute(r.Context(), req.ToExtendRequest())
	if err != nil {
		switch {
		case errors.Is(err, extendHold.ErrNotExtendable):
			h.logger.Warn("POST /holds [extend] - Not extendable: hold=%s", req.HoldID)
			handlers.RespondBadRequest(w, msgNotExtendable)

		case errors.Is(err, extendHold.ErrInvalidInput):
			h.logger.Warn("POST /holds [extend] - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /holds [extend] - Failed: hold=%s, error=%v", req.HoldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds [extend] - Hold extended: hold=%s, expires=%s", result.ID, result.ExpiresAt)
	handlers.RespondJSON(w, http.StatusOK, FromExtendResponse(result))
}

func (h *Handler) handleRelease(w http.ResponseWriter, r *http.Request, req *HoldActionRequest) {
	result, err := h.releaseUseCase.Execute(r.Context(), req.ToReleaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, releaseHold.ErrNotReleasable):
			h.logger.Warn("POST /holds [release] - Not releasable: hold=%s", req.HoldID)
			handlers.RespondBadRequest(w, msgNotReleasable)

		case errors.Is(err, releaseHold.ErrInvalidInput):
			h.logger.Warn("POST /holds [release] - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /holds [release] - Failed: hold=%s, error=%v", req.HoldID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /holds [release] - Hold released: hold=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromReleaseResponse(result))
}
