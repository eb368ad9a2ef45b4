package select_center

// SelectCenterRequest HTTP request model
type SelectCenterRequest struct {
	ServiceCenterID int64 `json:"serviceCenterId"`
}

// SelectCenterResponse HTTP response model
type SelectCenterResponse struct {
	ServiceCenterID int64  `json:"serviceCenterId"`
	Name            string `json:"name"`
	Next            string `json:"next"`
}
