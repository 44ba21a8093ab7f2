package booth

import "errors"

var (
	// ErrBoothNotFound возвращается, когда кабинка не найдена
	ErrBoothNotFound = errors.New("booth.repository: booth not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booth.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booth.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booth.repository: failed to scan row")
)
