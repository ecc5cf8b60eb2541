package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrPackageNotFound возвращается, когда пакет не найден или неактивен
	ErrPackageNotFound = errors.New("get_available_slots: package not found")

	// ErrPackageNotAvailableOnDay возвращается, когда пакет недоступен в этот день недели
	ErrPackageNotAvailableOnDay = errors.New("get_available_slots: package is not available on this day")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
