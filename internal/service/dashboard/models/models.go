package models

// DashboardResponse сводка для главной страницы
type DashboardResponse struct {
	TodayAppointments int                `json:"todayAppointments"`
	TotalClients      int                `json:"totalClients"`
	TotalServices     int                `json:"totalServices"`
	AverageTicket     float64            `json:"averageTicket"` // средняя цена неотмененной записи
	NextAppointment   *NextAppointment   `json:"nextAppointment,omitempty"`
	MostBookedService *MostBookedService `json:"mostBookedService,omitempty"`
}

// NextAppointment ближайшая предстоящая запись
type NextAppointment struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
}

// MostBookedService самая популярная услуга
type MostBookedService struct {
	ServiceID int64  `json:"serviceId"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}
