package whatsapp

import "github.com/m04kA/SMC-BarberShop/internal/domain"

// FormatPhone оставляет только цифры и добавляет код страны, если его нет
// "(11) 98765-4321" -> "5511987654321"
func FormatPhone(raw, countryCode string) (string, error) {
	digits := domain.NormalizePhone(raw)
	if digits == "" {
		return "", ErrInvalidPhone
	}
	if countryCode != "" && !hasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return digits, nil
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
