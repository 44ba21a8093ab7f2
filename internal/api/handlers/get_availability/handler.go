package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/KBS-ReservationService/internal/api/handlers"
	getAvailability "github.com/m04kA/KBS-ReservationService/internal/usecase/get_availability"
)

const (
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidGranularity = "некорректный шаг сетки"
	msgInvalidMinCapacity = "некорректная минимальная вместимость"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venue}/availability
// Query params: date (required, YYYY-MM-DD), granularity (minutes, optional),
// minCapacity (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venue := vars["venue"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /venues/{venue}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	granularity := 0
	if s := r.URL.Query().Get("granularity"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			h.logger.Warn("GET /venues/{venue}/availability - Invalid granularity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidGranularity)
			return
		}
		granularity = v
	}

	minCapacity := 0
	if s := r.URL.Query().Get("minCapacity"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			h.logger.Warn("GET /venues/{venue}/availability - Invalid minCapacity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMinCapacity)
			return
		}
		minCapacity = v
	}

	useCaseReq, err := ToUseCaseRequest(venue, dateStr, granularity, minCapacity)
	if err != nil {
		h.logger.Warn("GET /venues/{venue}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /venues/{venue}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /venues/{venue}/availability - Failed: venue=%s, date=%s, error=%v",
				venue, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{venue}/availability - Windows retrieved: venue=%s, date=%s, windows_count=%d",
		venue, dateStr, len(result.Windows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
