package select_service

// SelectServiceRequest тело запроса выбора услуги
type SelectServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}

// SelectServiceResponse подтверждение выбора услуги
type SelectServiceResponse struct {
	ServiceID   int64  `json:"serviceId"`
	Description string `json:"description"`
	Next        string `json:"next"`
}
