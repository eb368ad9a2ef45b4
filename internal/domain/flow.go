package domain

// Step шаг линейного флоу записи.
// Переход вперед возможен только при наличии данных предыдущих шагов.
type Step string

const (
	StepCenters  Step = "centers"  // выбор сервисного центра
	StepServices Step = "services" // выбор группы и услуги
	StepDateTime Step = "datetime" // выбор даты и времени
	StepProfile  Step = "profile"  // ввод данных заявителя и регистрация
	StepReceipt  Step = "receipt"  // чек
)

// FlowSession состояние незавершенной записи.
// Явная замена амбиентного глобального состояния старого UI: создается при
// старте флоу, очищается при завершении или отказе, хранится по session id.
type FlowSession struct {
	Center       *ServiceCenter      `json:"center,omitempty"`
	Service      *Service            `json:"service,omitempty"`
	SelectedDate *AvailableDate      `json:"selectedDate,omitempty"`
	SelectedTime string              `json:"selectedTime,omitempty"`
	Profile      *RegistrantProfile  `json:"profile,omitempty"`
	Registration *RegistrationResult `json:"registration,omitempty"`
}

// HasCenter выбран ли сервисный центр
func (s *FlowSession) HasCenter() bool {
	return s.Center != nil
}

// HasService выбрана ли услуга
func (s *FlowSession) HasService() bool {
	return s.Service != nil
}

// HasDate выбрана ли дата
func (s *FlowSession) HasDate() bool {
	return s.SelectedDate != nil
}

// HasSlot выбраны ли и дата, и время.
// Только в этом состоянии доступно подтверждение записи.
func (s *FlowSession) HasSlot() bool {
	return s.SelectedDate != nil && s.SelectedTime != ""
}

// HasRegistration завершена ли регистрация
func (s *FlowSession) HasRegistration() bool {
	return s.Registration != nil
}

// SelectCenter сохраняет выбранный центр и сбрасывает все последующие шаги
func (s *FlowSession) SelectCenter(center *ServiceCenter) {
	s.Center = center
	s.Service = nil
	s.clearSlot()
	s.Registration = nil
}

// SelectService сохраняет выбранную услугу и сбрасывает выбор даты и времени
func (s *FlowSession) SelectService(service *Service) {
	s.Service = service
	s.clearSlot()
	s.Registration = nil
}

// SelectDate сохраняет выбранную дату и сбрасывает ранее выбранное время
func (s *FlowSession) SelectDate(date *AvailableDate) {
	s.SelectedDate = date
	s.SelectedTime = ""
}

func (s *FlowSession) clearSlot() {
	s.SelectedDate = nil
	s.SelectedTime = ""
}
