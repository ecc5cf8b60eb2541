package calendar

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendar client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса календаря
	ErrInvalidResponse = errors.New("calendar client: invalid response")

	// ErrEventNotFound возвращается, когда событие не найдено в календаре
	ErrEventNotFound = errors.New("calendar event not found")

	// ErrDisabled возвращается, когда синхронизация с календарем выключена конфигурацией
	ErrDisabled = errors.New("calendar sync disabled")
)
