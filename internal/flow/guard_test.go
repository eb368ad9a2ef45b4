package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CNAP-BookingService/internal/domain"
)

func sessionWithCenter() *domain.FlowSession {
	s := &domain.FlowSession{}
	s.SelectCenter(&domain.ServiceCenter{ID: 1, Name: "ЦНАП м. Ужгород"})
	return s
}

func sessionWithService() *domain.FlowSession {
	s := sessionWithCenter()
	s.SelectService(&domain.Service{ID: 42, ServiceCenterID: 1, Description: "Видача довідки"})
	return s
}

func sessionWithSlot() *domain.FlowSession {
	s := sessionWithService()
	s.SelectDate(&domain.AvailableDate{Label: "27 січня", ISO: "2025-01-27"})
	s.SelectedTime = "10:00"
	return s
}

func TestCheck_CentersAlwaysAllowed(t *testing.T) {
	_, ok := Check(&domain.FlowSession{}, domain.StepCenters)
	assert.True(t, ok)
}

func TestCheck_ServicesRequiresCenter(t *testing.T) {
	redirect, ok := Check(&domain.FlowSession{}, domain.StepServices)

	assert.False(t, ok)
	assert.Equal(t, domain.StepCenters, redirect)

	_, ok = Check(sessionWithCenter(), domain.StepServices)
	assert.True(t, ok)
}

func TestCheck_DateTimeGuards(t *testing.T) {
	// Нет ни центра, ни услуги - в самое начало
	redirect, ok := Check(&domain.FlowSession{}, domain.StepDateTime)
	assert.False(t, ok)
	assert.Equal(t, domain.StepCenters, redirect)

	// Центр есть, услуги нет - на выбор услуги
	redirect, ok = Check(sessionWithCenter(), domain.StepDateTime)
	assert.False(t, ok)
	assert.Equal(t, domain.StepServices, redirect)

	_, ok = Check(sessionWithService(), domain.StepDateTime)
	assert.True(t, ok)
}

func TestCheck_ProfileRequiresSlot(t *testing.T) {
	redirect, ok := Check(sessionWithService(), domain.StepProfile)
	assert.False(t, ok)
	assert.Equal(t, domain.StepDateTime, redirect)

	// Дата без времени - подтверждение еще недоступно
	withDateOnly := sessionWithService()
	withDateOnly.SelectDate(&domain.AvailableDate{Label: "27 січня", ISO: "2025-01-27"})
	redirect, ok = Check(withDateOnly, domain.StepProfile)
	assert.False(t, ok)
	assert.Equal(t, domain.StepDateTime, redirect)

	_, ok = Check(sessionWithSlot(), domain.StepProfile)
	assert.True(t, ok)
}

func TestCheck_ReceiptRequiresRegistration(t *testing.T) {
	redirect, ok := Check(sessionWithSlot(), domain.StepReceipt)
	assert.False(t, ok)
	assert.Equal(t, domain.StepProfile, redirect)

	registered := sessionWithSlot()
	registered.Registration = &domain.RegistrationResult{OrderGuid: "guid", ReceiptNum: "A001"}

	_, ok = Check(registered, domain.StepReceipt)
	assert.True(t, ok)
}

func TestCheck_SelectCenterClearsDownstream(t *testing.T) {
	s := sessionWithSlot()
	s.Registration = &domain.RegistrationResult{OrderGuid: "guid", ReceiptNum: "A001"}

	s.SelectCenter(&domain.ServiceCenter{ID: 2, Name: "Підрозділ №2"})

	redirect, ok := Check(s, domain.StepDateTime)
	assert.False(t, ok)
	assert.Equal(t, domain.StepServices, redirect)
	assert.False(t, s.HasRegistration())
}

func TestCheck_SelectDateResetsTime(t *testing.T) {
	s := sessionWithSlot()

	s.SelectDate(&domain.AvailableDate{Label: "28 січня", ISO: "2025-01-28"})

	assert.False(t, s.HasSlot())

	redirect, ok := Check(s, domain.StepProfile)
	assert.False(t, ok)
	assert.Equal(t, domain.StepDateTime, redirect)
}
