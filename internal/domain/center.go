package domain

import "strings"

// ServiceCenter сервисный центр (ЦНАП или его территориальный подразделение)
type ServiceCenter struct {
	ID           int64
	BranchName   string
	Name         string
	LocationName string
	Preliminary  bool
}

// MatchesSearch проверяет вхождение поисковой строки в название центра
// (регистронезависимо). Пустой запрос совпадает со всеми центрами.
func (c *ServiceCenter) MatchesSearch(query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(query))
}
