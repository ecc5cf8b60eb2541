package mailer

import "errors"

var (
	// ErrDisabled возвращается, когда отправка почты выключена конфигурацией
	ErrDisabled = errors.New("mailer disabled")

	// ErrSend возвращается при ошибке отправки письма
	ErrSend = errors.New("mailer: failed to send email")

	// ErrRender возвращается при ошибке рендеринга шаблона письма
	ErrRender = errors.New("mailer: failed to render email body")
)
