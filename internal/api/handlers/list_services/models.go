package list_services

import "github.com/m04kA/CNAP-BookingService/internal/domain"

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []Service `json:"services"`
}

// Service модель услуги
type Service struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	GroupID     int64  `json:"groupId"`
}

// FromDomainList конвертирует доменные модели в HTTP response
func FromDomainList(services []domain.Service) *ServicesResponse {
	out := make([]Service, len(services))
	for i, s := range services {
		out[i] = Service{
			ID:          s.ID,
			Description: s.Description,
			GroupID:     s.GroupID,
		}
	}
	return &ServicesResponse{Services: out}
}
