package create_hold

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_hold: invalid input data")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_hold: invalid booking date")

	// ErrBoothNotFound возвращается, когда кабинка не найдена или отключена
	ErrBoothNotFound = errors.New("create_hold: booth not found")

	// ErrSlotConflict возвращается, когда слот уже занят активным холдом
	// или confirmed-бронированием. Автоматических ретраев нет - конфликт
	// поднимается до клиента, чтобы UI заново предложил выбор слота.
	ErrSlotConflict = errors.New("create_hold: slot is already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hold: internal error")
)
