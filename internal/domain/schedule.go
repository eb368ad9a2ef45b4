package domain

// AvailableDate доступная для записи дата в отображаемом виде.
// Метка локализована (uk-UA), ISO-форма нужна для запросов к API.
// Наружу попадают только даты с IsAllow=1 на wire-уровне.
type AvailableDate struct {
	Label string // "27 січня"
	ISO   string // "2025-01-27"
}

// AvailableTime слот времени на выбранную дату.
// Недоступные слоты (IsAllow=0) не скрываются, а показываются отключенными,
// поэтому признак доступности несется отдельным полем.
type AvailableTime struct {
	Time        string // "HH:mm"
	IsAvailable bool
}
