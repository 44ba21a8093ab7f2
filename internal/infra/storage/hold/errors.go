package hold

import "errors"

var (
	// ErrHoldNotFound возвращается, когда холд не найден
	ErrHoldNotFound = errors.New("hold.repository: hold not found")

	// ErrHoldConflict возвращается, когда на слот уже существует активный холд
	// (нарушение частичного уникального индекса при вставке)
	ErrHoldConflict = errors.New("hold.repository: active hold already exists for this slot")

	// ErrHoldNotExtendable возвращается, когда условный UPDATE продления не нашел
	// ни одной строки: холд не существует, истек, не активен или принадлежит другой сессии
	ErrHoldNotExtendable = errors.New("hold.repository: hold is not extendable")

	// ErrHoldNotReleasable возвращается, когда условный UPDATE снятия не нашел
	// ни одной строки: холд не активен или принадлежит другой сессии
	ErrHoldNotReleasable = errors.New("hold.repository: hold is not releasable")

	// ErrHoldNotConsumable возвращается, когда условный UPDATE потребления
	// не нашел активный холд
	ErrHoldNotConsumable = errors.New("hold.repository: hold is not consumable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hold.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hold.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hold.repository: failed to scan row")
)
