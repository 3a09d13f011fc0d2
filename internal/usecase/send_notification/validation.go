package send_notification

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	switch req.Trigger {
	case TriggerManual, TriggerReminder:
	default:
		return fmt.Errorf("%w: unknown trigger %q", ErrInvalidInput, req.Trigger)
	}

	if req.Template != nil {
		if strings.TrimSpace(*req.Template) == "" {
			return fmt.Errorf("%w: template must not be empty", ErrInvalidInput)
		}
		if len(*req.Template) > domain.MaxTemplateLength {
			return fmt.Errorf("%w: template must be at most %d characters", ErrInvalidInput, domain.MaxTemplateLength)
		}
	}

	return nil
}
