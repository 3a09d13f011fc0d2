package domain

// Slot grid
const (
	// SlotGranularityMinutes шаг сетки слотов от времени открытия
	SlotGranularityMinutes = 30
)

// Default configuration values
const (
	DefaultShopName    = "Barbearia"
	DefaultOpeningTime = "09:00"
	DefaultClosingTime = "19:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxNameLength             = 200
	MaxNotesLength            = 500
	MaxTemplateLength         = 1000
	MinPhoneDigits            = 10
	MaxPhoneDigits            = 13
)

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	DisplayDateFormat = "02/01/2006" // dd/mm/yyyy, формат сообщений клиентам
)

// InactiveStatuses статусы записей, которые не занимают слоты
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses статусы записей, которые занимают слоты
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
