package blockeddays

import "errors"

var (
	// ErrBlockedDayNotFound возвращается, когда блокировка не найдена
	ErrBlockedDayNotFound = errors.New("blocked day not found")

	// ErrAlreadyBlocked возвращается при повторной блокировке даты
	ErrAlreadyBlocked = errors.New("day is already blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
