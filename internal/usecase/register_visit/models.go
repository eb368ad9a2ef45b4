package register_visit

import "github.com/m04kA/CNAP-BookingService/internal/domain"

// Request модель запроса на регистрацию визита.
// Центр, услуга и слот берутся из состояния флоу, профиль - из формы.
type Request struct {
	Center  *domain.ServiceCenter
	Service *domain.Service
	Date    *domain.AvailableDate
	Time    string // "HH:mm"
	Profile domain.RegistrantProfile
}

// Response модель ответа с результатом регистрации
type Response struct {
	Result domain.RegistrationResult
}
