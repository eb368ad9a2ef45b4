package get_receipt

// ReceiptResponse чек записи: реквизиты визита и печатная форма.
// Markup пустой, если печатная форма недоступна - чек все равно
// показывается по реквизитам из сессии
type ReceiptResponse struct {
	ReceiptNum  string `json:"receiptNum"`
	CenterName  string `json:"centerName"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Markup      string `json:"markup,omitempty"`
}
