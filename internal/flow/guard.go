// Package flow содержит guard-предикаты линейного флоу записи.
//
// В старом UI редиректы назад были размазаны по коду загрузки данных страниц.
// Здесь каждый шаг явно декларирует свое предусловие, а при его отсутствии
// guard называет самый ранний шаг, предусловие которого выполнено.
package flow

import "github.com/m04kA/CNAP-BookingService/internal/domain"

// Check проверяет предусловие шага для состояния сессии.
// Возвращает ok=true, если шаг доступен; иначе ok=false и шаг,
// на который нужно средиректить пользователя.
func Check(s *domain.FlowSession, step domain.Step) (redirect domain.Step, ok bool) {
	switch step {
	case domain.StepCenters:
		return "", true

	case domain.StepServices:
		if !s.HasCenter() {
			return domain.StepCenters, false
		}
		return "", true

	case domain.StepDateTime:
		if !s.HasCenter() {
			return domain.StepCenters, false
		}
		if !s.HasService() {
			return domain.StepServices, false
		}
		return "", true

	case domain.StepProfile:
		if redirect, ok := Check(s, domain.StepDateTime); !ok {
			return redirect, false
		}
		if !s.HasSlot() {
			return domain.StepDateTime, false
		}
		return "", true

	case domain.StepReceipt:
		if redirect, ok := Check(s, domain.StepProfile); !ok {
			return redirect, false
		}
		if !s.HasRegistration() {
			return domain.StepProfile, false
		}
		return "", true

	default:
		// Неизвестный шаг отправляем в начало флоу
		return domain.StepCenters, false
	}
}
