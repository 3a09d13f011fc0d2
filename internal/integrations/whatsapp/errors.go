package whatsapp

import "errors"

var (
	// ErrInvalidPhone возвращается, если в номере нет цифр
	ErrInvalidPhone = errors.New("whatsapp client: invalid phone number")

	// ErrEmptyMessage возвращается при попытке отправить пустое сообщение
	ErrEmptyMessage = errors.New("whatsapp client: empty message")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrGatewayFailed возвращается, если шлюз недоступен или ответил ошибкой
	ErrGatewayFailed = errors.New("whatsapp client: gateway failed")
)
