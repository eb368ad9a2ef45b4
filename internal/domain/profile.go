package domain

import "strings"

// RegistrantProfile данные заявителя. Живут только в рамках сессии.
type RegistrantProfile struct {
	LastName    string
	FirstName   string
	MiddleName  string
	Phone       string
	Email       string // опционально
	CompanyName string // опционально, для юридических лиц
}

// FullName собирает составное имя в формате, который ожидает API регистрации
func (p *RegistrantProfile) FullName() string {
	return strings.TrimSpace(p.LastName + " " + p.FirstName + " " + p.MiddleName)
}

// RegistrationResult результат успешной регистрации
type RegistrationResult struct {
	OrderGuid  string
	ReceiptNum string
}
