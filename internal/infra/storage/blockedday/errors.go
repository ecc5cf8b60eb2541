package blockedday

import "errors"

var (
	// ErrBlockedDayNotFound возвращается, когда заблокированный день не найден
	ErrBlockedDayNotFound = errors.New("blockedday.repository: blocked day not found")

	// ErrAlreadyBlocked возвращается при попытке заблокировать уже заблокированную дату
	ErrAlreadyBlocked = errors.New("blockedday.repository: date is already blocked")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("blockedday.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("blockedday.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("blockedday.repository: failed to scan row")
)
