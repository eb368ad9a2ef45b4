package register_visit

import "github.com/m04kA/CNAP-BookingService/internal/domain"

// RegisterVisitRequest форма данных заявителя
type RegisterVisitRequest struct {
	LastName    string `json:"lastName"`
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	Phone       string `json:"phone"`
	Email       string `json:"email,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

// ToDomain конвертирует форму в доменную модель профиля
func (r *RegisterVisitRequest) ToDomain() domain.RegistrantProfile {
	return domain.RegistrantProfile{
		LastName:    r.LastName,
		FirstName:   r.FirstName,
		MiddleName:  r.MiddleName,
		Phone:       r.Phone,
		Email:       r.Email,
		CompanyName: r.CompanyName,
	}
}

// RegisterVisitResponse результат регистрации
type RegisterVisitResponse struct {
	OrderGuid  string `json:"orderGuid"`
	ReceiptNum string `json:"receiptNum"`
	Next       string `json:"next"`
}
