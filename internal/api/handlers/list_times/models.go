package list_times

import "github.com/m04kA/CNAP-BookingService/internal/domain"

// TimesResponse HTTP response model
type TimesResponse struct {
	Date  Date   `json:"date"`
	Times []Time `json:"times"`
}

// Date выбранная дата
type Date struct {
	Label string `json:"label"`
	ISO   string `json:"iso"`
}

// Time слот времени. Недоступные слоты остаются в списке с available=false:
// UI показывает их отключенными
type Time struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// FromDomainList конвертирует доменные модели в HTTP response
func FromDomainList(date *domain.AvailableDate, times []domain.AvailableTime) *TimesResponse {
	out := make([]Time, len(times))
	for i, t := range times {
		out[i] = Time{
			Time:      t.Time,
			Available: t.IsAvailable,
		}
	}
	return &TimesResponse{
		Date:  Date{Label: date.Label, ISO: date.ISO},
		Times: out,
	}
}
