package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/avanturapark/booking-service/internal/domain"
	"github.com/avanturapark/booking-service/internal/integrations/calendar"
	"github.com/avanturapark/booking-service/internal/integrations/mailer"
	"github.com/avanturapark/booking-service/internal/sideeffects"
)

// Формат даты в письмах (немецкая локаль)
const emailDateFormat = "02.01.2006"

// Notifier ставит побочные эффекты бронирования (почта, календарь) в очередь.
// Все методы возвращают управление сразу: доставка происходит в фоне и
// никогда не влияет на исход операции с бронированием.
type Notifier struct {
	dispatcher  Dispatcher
	mailer      Mailer
	calendar    CalendarClient
	bookingRepo BookingRepository
	logger      Logger
}

// New создает новый экземпляр нотификатора
func New(dispatcher Dispatcher, mail Mailer, cal CalendarClient, bookingRepo BookingRepository, logger Logger) *Notifier {
	return &Notifier{
		dispatcher:  dispatcher,
		mailer:      mail,
		calendar:    cal,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// BookingCreated уведомляет персонал о новой заявке
func (n *Notifier) BookingCreated(booking *domain.Booking) {
	if !n.mailer.Enabled() {
		return
	}

	data := buildEmail(booking)
	n.dispatcher.Enqueue(sideeffects.Job{
		Kind: "staff_notification",
		Run: func(ctx context.Context) error {
			return n.mailer.SendStaffNotification(data)
		},
	})
}

// BookingConfirmed создает событие в календаре и отправляет клиенту
// письмо с подтверждением
func (n *Notifier) BookingConfirmed(booking *domain.Booking) {
	if n.calendar.Enabled() {
		bookingID := booking.ID
		event := buildEvent(booking)
		n.dispatcher.Enqueue(sideeffects.Job{
			Kind: "calendar_create",
			Run: func(ctx context.Context) error {
				eventID, err := n.calendar.CreateEvent(ctx, event)
				if err != nil {
					return err
				}
				if err := n.bookingRepo.SetCalendarEventID(ctx, bookingID, eventID); err != nil {
					// Событие создано, но ID не записан: удалять его нельзя,
					// иначе потеряем бронь в календаре. Оставляем след в логе.
					n.logger.Error("Notifier: booking id=%d: calendar event %s created but not stored: %v", bookingID, eventID, err)
					return err
				}
				return nil
			},
		})
	}

	if n.mailer.Enabled() && booking.CustomerEmail != "" {
		data := buildEmail(booking)
		n.dispatcher.Enqueue(sideeffects.Job{
			Kind: "customer_confirmation",
			Run: func(ctx context.Context) error {
				return n.mailer.SendCustomerConfirmation(data)
			},
		})
	}
}

// BookingCancelled удаляет событие бронирования из календаря, если оно было создано
func (n *Notifier) BookingCancelled(booking *domain.Booking) {
	if !n.calendar.Enabled() || booking.CalendarEventID == nil || *booking.CalendarEventID == "" {
		return
	}

	eventID := *booking.CalendarEventID
	n.dispatcher.Enqueue(sideeffects.Job{
		Kind: "calendar_delete",
		Run: func(ctx context.Context) error {
			err := n.calendar.DeleteEvent(ctx, eventID)
			if errors.Is(err, calendar.ErrEventNotFound) {
				// Уже удалено вручную
				return nil
			}
			return err
		},
	})
}

func buildEmail(booking *domain.Booking) mailer.BookingEmail {
	extras := make([]mailer.ExtraLine, 0, len(booking.Extras))
	for _, e := range booking.Extras {
		extras = append(extras, mailer.ExtraLine{Name: e.Name, Price: e.Price})
	}

	return mailer.BookingEmail{
		BookingID:       booking.ID,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		Date:            booking.BookingDate.Format(emailDateFormat),
		StartTime:       booking.StartTime.String(),
		EndTime:         booking.EndTime.String(),
		PackageName:     booking.PackageName,
		NumberOfPersons: booking.NumberOfPersons,
		Extras:          extras,
		SelectedFood:    booking.SelectedFood,
		SpecialRequests: booking.SpecialRequests,
		TotalPrice:      booking.TotalPrice,
	}
}

func buildEvent(booking *domain.Booking) calendar.EventRequest {
	extras := make([]string, 0, len(booking.Extras))
	for _, e := range booking.Extras {
		extras = append(extras, e.Name)
	}

	notes := booking.SpecialRequests
	if booking.SelectedFood != "" {
		if notes != "" {
			notes += "; "
		}
		notes += "Essen: " + booking.SelectedFood
	}

	return calendar.EventRequest{
		Title:          fmt.Sprintf("%s – %s (%d Pers.)", booking.PackageName, booking.CustomerName, booking.NumberOfPersons),
		Date:           booking.BookingDate.Format(domain.DateFormat),
		StartTime:      booking.StartTime.String(),
		EndTime:        booking.EndTime.String(),
		CustomerName:   booking.CustomerName,
		CustomerEmail:  booking.CustomerEmail,
		CustomerPhone:  booking.CustomerPhone,
		PackageName:    booking.PackageName,
		NumberOfPeople: booking.NumberOfPersons,
		Extras:         extras,
		Notes:          notes,
	}
}
