package release_hold

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("release_hold: invalid input data")

	// ErrNotReleasable возвращается, когда условный UPDATE не нашел ни одной
	// строки: холд не активен или принадлежит другой сессии. Повторное снятие
	// безвредно - состояние холда не меняется.
	ErrNotReleasable = errors.New("release_hold: hold is not releasable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_hold: internal error")
)
