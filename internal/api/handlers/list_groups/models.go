package list_groups

import "github.com/m04kA/CNAP-BookingService/internal/domain"

// GroupsResponse HTTP response model
type GroupsResponse struct {
	Groups []Group `json:"groups"`
}

// Group модель группы услуг
type Group struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// FromDomainList конвертирует доменные модели в HTTP response
func FromDomainList(groups []domain.ServiceGroup) *GroupsResponse {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = Group{
			ID:          g.ID,
			Description: g.Description,
			Active:      g.Active,
		}
	}
	return &GroupsResponse{Groups: out}
}
