package models

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление настроек барбершопа
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	WhatsApp    *string `json:"whatsapp,omitempty"`
	OpeningTime *string `json:"openingTime,omitempty"` // "09:00"
	ClosingTime *string `json:"closingTime,omitempty"` // "19:00"
}

// UpdateAutomationRequest запрос на обновление настроек напоминаний
type UpdateAutomationRequest struct {
	Enabled          *bool   `json:"enabled,omitempty"`
	ReminderLead     *string `json:"reminderLead,omitempty"` // 2min, 30min, 1h, 2h
	ReminderTemplate *string `json:"reminderTemplate,omitempty"`
}

// Response модели

// ShopConfigResponse ответ с настройками барбершопа
type ShopConfigResponse struct {
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	WhatsApp    string     `json:"whatsapp"`
	OpeningTime string     `json:"openingTime"`
	ClosingTime string     `json:"closingTime"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"` // nil, пока настройки не сохранены
}

// AutomationResponse ответ с настройками напоминаний
type AutomationResponse struct {
	Enabled          bool       `json:"enabled"`
	ReminderLead     string     `json:"reminderLead"`
	ReminderTemplate string     `json:"reminderTemplate"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainShopConfig конвертирует domain модель в DTO
func FromDomainShopConfig(c *domain.ShopConfig) *ShopConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ShopConfigResponse{
		Name:        c.Name,
		Address:     c.Address,
		City:        c.City,
		WhatsApp:    c.WhatsApp,
		OpeningTime: c.BusinessHours.Opening.String(),
		ClosingTime: c.BusinessHours.Closing.String(),
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// FromDomainAutomation конвертирует domain модель в DTO
func FromDomainAutomation(a *domain.Automation) *AutomationResponse {
	if a == nil {
		return nil
	}

	resp := &AutomationResponse{
		Enabled:          a.Enabled,
		ReminderLead:     string(a.ReminderLead),
		ReminderTemplate: a.ReminderTemplate,
	}
	if !a.UpdatedAt.IsZero() {
		updatedAt := a.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
