package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// ErrInvalidBusinessHours возвращается, если время открытия не раньше закрытия
var ErrInvalidBusinessHours = errors.New("domain: opening time must be before closing time")

// BusinessHours часы работы, общие для всех дней
type BusinessHours struct {
	Opening types.TimeString
	Closing types.TimeString
}

// Validate проверяет формат и порядок времени
func (h BusinessHours) Validate() error {
	if err := h.Opening.Validate(); err != nil {
		return err
	}
	if err := h.Closing.Validate(); err != nil {
		return err
	}
	if !h.Opening.IsBefore(h.Closing) {
		return ErrInvalidBusinessHours
	}
	return nil
}

// ShopConfig настройки барбершопа (единственная запись)
type ShopConfig struct {
	Name          string
	Address       string
	City          string
	WhatsApp      string
	BusinessHours BusinessHours
	UpdatedAt     time.Time
}

// ReminderLead за сколько до записи отправлять напоминание
type ReminderLead string

const (
	ReminderLead2Min  ReminderLead = "2min"
	ReminderLead30Min ReminderLead = "30min"
	ReminderLead1H    ReminderLead = "1h"
	ReminderLead2H    ReminderLead = "2h"
)

// Duration returns the lead as a time.Duration, zero for unknown values
func (l ReminderLead) Duration() time.Duration {
	switch l {
	case ReminderLead2Min:
		return 2 * time.Minute
	case ReminderLead30Min:
		return 30 * time.Minute
	case ReminderLead1H:
		return time.Hour
	case ReminderLead2H:
		return 2 * time.Hour
	}
	return 0
}

// IsValid returns true for supported leads
func (l ReminderLead) IsValid() bool {
	return l.Duration() > 0
}

// Плейсхолдеры шаблонов: {nome}, {data}, {horario}, {servico}, {barbearia}, {endereco}

// DefaultReminderTemplate шаблон напоминания по умолчанию
const DefaultReminderTemplate = "Olá {nome}!\nLembrete do seu agendamento:\n" +
	"📅 Data: {data}\n⏰ Horário: {horario}\n\nAgradecemos a confirmação!"

// ConfirmationTemplate шаблон подтверждения записи
const ConfirmationTemplate = "Olá {nome}, confirmando seu agendamento na {barbearia} " +
	"para {servico} no dia {data} às {horario}. Endereço: {endereco}. Até lá!"

// Automation настройки автоматических напоминаний
type Automation struct {
	Enabled          bool
	ReminderLead     ReminderLead
	ReminderTemplate string
	UpdatedAt        time.Time
}

// DefaultAutomation возвращает выключенную автоматизацию с шаблоном по умолчанию
func DefaultAutomation() *Automation {
	return &Automation{
		Enabled:          false,
		ReminderLead:     ReminderLead1H,
		ReminderTemplate: DefaultReminderTemplate,
	}
}
