package send_notification

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("send_notification: appointment not found")

	// ErrAppointmentCancelled возвращается при попытке уведомить по отмененной записи
	ErrAppointmentCancelled = errors.New("send_notification: appointment is cancelled")

	// ErrInvalidPhone возвращается, если телефон клиента не подходит для WhatsApp
	ErrInvalidPhone = errors.New("send_notification: invalid client phone")

	// ErrGatewayFailed возвращается, если шлюз WhatsApp не принял сообщение
	ErrGatewayFailed = errors.New("send_notification: gateway failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("send_notification: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_notification: internal error")
)
