package list_centers

import "github.com/m04kA/CNAP-BookingService/internal/domain"

// CentersResponse HTTP response model
type CentersResponse struct {
	Centers []Center `json:"centers"`
}

// Center модель сервисного центра
type Center struct {
	ID           int64  `json:"id"`
	BranchName   string `json:"branchName"`
	Name         string `json:"name"`
	LocationName string `json:"locationName"`
}

// FromDomainList конвертирует доменные модели в HTTP response
func FromDomainList(centers []domain.ServiceCenter) *CentersResponse {
	out := make([]Center, len(centers))
	for i, c := range centers {
		out[i] = Center{
			ID:           c.ID,
			BranchName:   c.BranchName,
			Name:         c.Name,
			LocationName: c.LocationName,
		}
	}
	return &CentersResponse{Centers: out}
}
