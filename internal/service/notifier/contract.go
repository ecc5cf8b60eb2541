package notifier

import (
	"context"

	"github.com/avanturapark/booking-service/internal/integrations/calendar"
	"github.com/avanturapark/booking-service/internal/integrations/mailer"
	"github.com/avanturapark/booking-service/internal/sideeffects"
)

// Dispatcher интерфейс очереди отложенных задач
type Dispatcher interface {
	Enqueue(job sideeffects.Job)
}

// Mailer интерфейс почтового клиента
type Mailer interface {
	Enabled() bool
	SendCustomerConfirmation(data mailer.BookingEmail) error
	SendStaffNotification(data mailer.BookingEmail) error
}

// CalendarClient интерфейс клиента календаря
type CalendarClient interface {
	Enabled() bool
	CreateEvent(ctx context.Context, event calendar.EventRequest) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// BookingRepository интерфейс для сохранения идентификатора события календаря
type BookingRepository interface {
	SetCalendarEventID(ctx context.Context, id int64, eventID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
