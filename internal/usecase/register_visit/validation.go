package register_visit

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Center == nil {
		return fmt.Errorf("%w: service center is required", ErrInvalidInput)
	}

	if req.Service == nil {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}

	if req.Date == nil {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if _, err := time.Parse(domain.TimeFormat, req.Time); err != nil {
		return fmt.Errorf("%w: time must be in HH:mm format", ErrInvalidInput)
	}

	if req.Date.ISO != "" {
		if _, err := time.Parse(domain.DateFormat, req.Date.ISO); err != nil {
			return fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
		}
	}

	if strings.TrimSpace(req.Profile.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Profile.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidInput)
	}

	if err := validatePhone(req.Profile.Phone); err != nil {
		return err
	}

	// Email опционален, но если указан - должен быть похож на адрес
	if req.Profile.Email != "" && !strings.Contains(req.Profile.Email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	return nil
}

// validatePhone проверяет, что телефон не пуст и состоит из цифр
func validatePhone(phone string) error {
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	for _, r := range phone {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("%w: phone must contain only digits", ErrInvalidInput)
		}
	}

	return nil
}
