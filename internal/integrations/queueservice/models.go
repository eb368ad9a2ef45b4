package queueservice

// Wire-модели QueueService API. Схемы у API нет, поэтому каждое поле
// считается опциональным: отсутствующее поле остается нулевым значением
// и валидируется выше по стеку.

// ServiceCenter сервисный центр из getServiceCenterList
type ServiceCenter struct {
	ServiceCenterId   int64  `json:"ServiceCenterId"`
	BranchName        string `json:"BranchName"`
	ServiceCenterName string `json:"ServiceCenterName"`
	LocationName      string `json:"LocationName"`
	Preliminary       bool   `json:"Preliminary"`
}

// ServiceGroup группа услуг из getGroupsByCenterId
type ServiceGroup struct {
	GroupId     int64  `json:"GroupId"`
	Description string `json:"Description"`
	GroupGuid   string `json:"GroupGuid"`
	IsActive    int    `json:"isActive"`
}

// Service услуга из getServicesByCenterId / GetServiceList
type Service struct {
	ServiceId       int64  `json:"ServiceId"`
	Description     string `json:"Description"`
	ServiceCenterId int64  `json:"ServiceCenterId"`
	GroupId         int64  `json:"GroupId"`
}

// AvailableDate дата из GetDayList.
// DatePart несет millisecond-таймстамп внутри строки ("/Date(...)/"),
// IsAllow=1 означает, что на дату можно записаться.
type AvailableDate struct {
	DatePart string `json:"DatePart"`
	IsAllow  int    `json:"IsAllow"`
}

// AvailableTime слот из GetTimeList.
// StartTime приходит ISO-8601 duration-строкой вида "PT9H30M".
type AvailableTime struct {
	StartTime string `json:"StartTime"`
	IsAllow   int    `json:"IsAllow"`
}

// RegistrationResponse результат RegCustomerEx
type RegistrationResponse struct {
	CustOrderGuid  string `json:"CustOrderGuid"`
	CustReceiptNum string `json:"CustReceiptNum"`
}

// RegisterCustomerParams параметры регистрации заявителя
type RegisterCustomerParams struct {
	ServiceCenterID int64
	ServiceID       int64
	Date            string // YYYY-MM-DD
	Time            string // HH:mm
	Name            string // "Фамилия Имя Отчество"
	Phone           string
	Email           string // опционально; пустое значение не отправляется
	CompanyName     string // опционально; пустое значение не отправляется
}
