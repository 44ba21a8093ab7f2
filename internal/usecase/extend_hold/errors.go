package extend_hold

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("extend_hold: invalid input data")

	// ErrNotExtendable возвращается, когда условный UPDATE не нашел ни одной
	// строки: холд не существует, истек, снят, потреблен или принадлежит
	// другой сессии. Различать эти случаи намеренно не пытаемся -
	// read-then-write здесь запрещен.
	ErrNotExtendable = errors.New("extend_hold: hold is not extendable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("extend_hold: internal error")
)
