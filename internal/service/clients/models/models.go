package models

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// ClientResponse ответ с данными клиента
type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientListResponse ответ со списком клиентов
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// VisitResponse запись в истории клиента
type VisitResponse struct {
	AppointmentID int64   `json:"appointmentId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	ServiceName   string  `json:"serviceName"`
	ServicePrice  float64 `json:"servicePrice"`
	Status        string  `json:"status"`
}

// ClientHistoryResponse история записей клиента
type ClientHistoryResponse struct {
	Client     ClientResponse  `json:"client"`
	Visits     []VisitResponse `json:"visits"`
	TotalSpent float64         `json:"totalSpent"` // сумма по неотмененным записям
}

// FromDomainClient конвертирует domain модель в DTO
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainClientList конвертирует список domain моделей в DTO
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	resp := &ClientListResponse{Clients: make([]ClientResponse, 0, len(clients))}
	for _, c := range clients {
		if item := FromDomainClient(c); item != nil {
			resp.Clients = append(resp.Clients, *item)
		}
	}
	return resp
}

// NewClientHistory собирает историю клиента
func NewClientHistory(c *domain.Client, appointments []*domain.Appointment) *ClientHistoryResponse {
	resp := &ClientHistoryResponse{
		Client: *FromDomainClient(c),
		Visits: make([]VisitResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		resp.Visits = append(resp.Visits, VisitResponse{
			AppointmentID: a.ID,
			Date:          a.Date.Format(domain.DateFormat),
			StartTime:     a.StartTime.String(),
			ServiceName:   a.ServiceName,
			ServicePrice:  a.ServicePrice,
			Status:        string(a.Status),
		})
		if a.IsActive() {
			resp.TotalSpent += a.ServicePrice
		}
	}
	return resp
}
