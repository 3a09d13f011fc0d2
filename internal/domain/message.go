package domain

import "strings"

// MessageData значения плейсхолдеров шаблона сообщения
type MessageData struct {
	ClientName  string
	Date        string // dd/mm/yyyy
	Time        string // HH:MM
	ServiceName string
	ShopName    string
	ShopAddress string
}

// NewMessageData собирает значения плейсхолдеров по записи и настройкам барбершопа
func NewMessageData(a *Appointment, shop *ShopConfig) MessageData {
	data := MessageData{
		ClientName:  a.ClientName,
		Date:        a.Date.Format(DisplayDateFormat),
		Time:        string(a.StartTime),
		ServiceName: a.ServiceName,
	}
	if shop != nil {
		data.ShopName = shop.Name
		data.ShopAddress = joinAddress(shop.Address, shop.City)
	}
	return data
}

// RenderMessage подставляет значения в шаблон
// Неизвестные плейсхолдеры остаются как есть
func RenderMessage(template string, data MessageData) string {
	return strings.NewReplacer(
		"{nome}", data.ClientName,
		"{data}", data.Date,
		"{horario}", data.Time,
		"{servico}", data.ServiceName,
		"{barbearia}", data.ShopName,
		"{endereco}", data.ShopAddress,
	).Replace(template)
}

func joinAddress(address, city string) string {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)
	switch {
	case address == "":
		return city
	case city == "":
		return address
	}
	return address + ", " + city
}
