package extras

import "errors"

var (
	// ErrExtraNotFound возвращается, когда extra не найдена
	ErrExtraNotFound = errors.New("extras.repository: extra not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("extras.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("extras.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("extras.repository: failed to scan row")
)
