package list_dates

import "github.com/m04kA/CNAP-BookingService/internal/domain"

// DatesResponse HTTP response model
type DatesResponse struct {
	Dates []Date `json:"dates"`
}

// Date доступная дата: человекочитаемая подпись и ISO значение
type Date struct {
	Label string `json:"label"`
	ISO   string `json:"iso"`
}

// FromDomainList конвертирует доменные модели в HTTP response
func FromDomainList(dates []domain.AvailableDate) *DatesResponse {
	out := make([]Date, len(dates))
	for i, d := range dates {
		out[i] = Date{
			Label: d.Label,
			ISO:   d.ISO,
		}
	}
	return &DatesResponse{Dates: out}
}
