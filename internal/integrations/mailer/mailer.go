package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"
)

// Mailer отправляет письма клиентам и персоналу через SMTP
type Mailer struct {
	enabled    bool
	host       string
	port       int
	from       string
	password   string
	staffEmail string
	log        Logger
}

// New создает новый экземпляр почтового клиента
func New(enabled bool, host string, port int, from, password, staffEmail string, log Logger) *Mailer {
	return &Mailer{
		enabled:    enabled,
		host:       host,
		port:       port,
		from:       from,
		password:   password,
		staffEmail: staffEmail,
		log:        log,
	}
}

// Enabled сообщает, включена ли отправка почты
func (m *Mailer) Enabled() bool {
	return m.enabled
}

// SendCustomerConfirmation отправляет клиенту письмо с подтверждением бронирования
func (m *Mailer) SendCustomerConfirmation(data BookingEmail) error {
	if !m.enabled {
		return ErrDisabled
	}
	if data.CustomerEmail == "" {
		// Ручные бронирования могут не иметь контактных данных
		m.log.Warn("Skipping customer confirmation for booking #%d: no email", data.BookingID)
		return nil
	}

	subject := fmt.Sprintf("Buchungsbestätigung #%d – Avantura Park", data.BookingID)
	return m.send(data.CustomerEmail, subject, customerConfirmationTmpl, data)
}

// SendStaffNotification уведомляет персонал о новой заявке на бронирование
func (m *Mailer) SendStaffNotification(data BookingEmail) error {
	if !m.enabled {
		return ErrDisabled
	}
	if m.staffEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("Neue Buchung #%d: %s, %s %s", data.BookingID, data.CustomerName, data.Date, data.StartTime)
	return m.send(m.staffEmail, subject, staffNotificationTmpl, data)
}

func (m *Mailer) send(to, subject string, tmpl *template.Template, data BookingEmail) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: Avantura Park <%s>\r\n", m.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.from, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSend, to, err)
	}

	m.log.Info("Email sent: to=%s, subject=%q", to, subject)
	return nil
}
