package domain

import (
	"strings"
	"time"
	"unicode"
)

// Client represents a barbershop customer
type Client struct {
	ID        int64
	Name      string
	Phone     string // только цифры
	Email     *string
	CreatedAt time.Time
}

// NormalizePhone оставляет в номере только цифры
// "(11) 98765-4321" -> "11987654321"
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidPhone проверяет длину нормализованного номера
func ValidPhone(digits string) bool {
	return len(digits) >= MinPhoneDigits && len(digits) <= MaxPhoneDigits
}
