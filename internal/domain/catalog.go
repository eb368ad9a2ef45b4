package domain

import "strings"

// UngroupedGroupID sentinel-значение GroupId для услуг вне групп.
// API возвращает такие услуги напрямую, без навигации по группам.
const UngroupedGroupID int64 = 0

// ServiceGroup группа услуг внутри сервисного центра
type ServiceGroup struct {
	ID          int64
	Description string
	Guid        string
	Active      bool
}

// Service услуга, на которую можно записаться
type Service struct {
	ID              int64
	Description     string
	ServiceCenterID int64
	GroupID         int64
}

// MatchesSearch проверяет вхождение поисковой строки в описание услуги
// (регистронезависимо). Пустой запрос совпадает со всеми услугами.
func (s *Service) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Description), strings.ToLower(query))
}
