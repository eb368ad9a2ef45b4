package select_slot

// SelectSlotRequest тело запроса выбора времени
type SelectSlotRequest struct {
	Time string `json:"time"`
}

// SelectSlotResponse подтверждение выбора слота
type SelectSlotResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
	Next string `json:"next"`
}
