package finalize_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("finalize_booking: invalid input data")

	// ErrHoldNotFound возвращается, когда холд не существует, не активен
	// или уже истек - то есть нечего конвертировать
	ErrHoldNotFound = errors.New("finalize_booking: hold not found")

	// ErrBoothNotFound возвращается, когда кабинка холда не найдена
	ErrBoothNotFound = errors.New("finalize_booking: booth not found")

	// ErrConflict возвращается, когда вставка упала по уникальному индексу,
	// а повторная проба победителя не нашла - неразрешимый конфликт записи,
	// состояние не менялось
	ErrConflict = errors.New("finalize_booking: unresolved write conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("finalize_booking: internal error")
)
