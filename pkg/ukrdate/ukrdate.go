// Package ukrdate конвертирует даты и время между форматом QueueService API
// и отображаемым видом для украинской локали.
//
// API отдает даты строками вида "/Date(1737936000000)/" (миллисекунды Unix)
// и время строками вида "PT9H30M" (ISO-8601 duration от начала суток).
package ukrdate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// InvalidTime sentinel-значение для нераспознанного формата времени.
// Возвращается вместо ошибки: UI показывает его как есть.
const InvalidTime = "Invalid time"

// ISOFormat формат даты, который ожидает QueueService API
const ISOFormat = "2006-01-02"

var (
	// ErrInvalidMonthName возвращается, когда название месяца отсутствует в таблице
	ErrInvalidMonthName = errors.New("invalid month name")

	// ErrInvalidDateLabel возвращается, когда метка даты не разбирается на день и месяц
	ErrInvalidDateLabel = errors.New("invalid date label")
)

// FormattedDate отображаемая дата: локализованная метка плюс ISO-форма.
// Единое представление вместо двух вариантов, разошедшихся в старом UI.
type FormattedDate struct {
	Label string // "27 січня"
	ISO   string // "2025-01-27"
}

// monthsGenitive названия месяцев в родительном падеже (uk-UA),
// как их отдает toLocaleDateString с {month: "long"}
var monthsGenitive = [12]string{
	"січня",
	"лютого",
	"березня",
	"квітня",
	"травня",
	"червня",
	"липня",
	"серпня",
	"вересня",
	"жовтня",
	"листопада",
	"грудня",
}

var (
	digitsRe   = regexp.MustCompile(`\d+`)
	durationRe = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)
)

// FormatDate извлекает millisecond-таймстамп из wire-строки и строит
// отображаемую дату. Первая последовательность цифр считается таймстампом;
// если цифр нет, используется 0 (поведение исходного UI).
// Дата берется в UTC, чтобы результат не зависел от таймзоны сервера.
func FormatDate(wire string) FormattedDate {
	ts := int64(0)
	if m := digitsRe.FindString(wire); m != "" {
		// Переполнение int64 здесь невозможно на реальных данных API
		ts, _ = strconv.ParseInt(m, 10, 64)
	}

	date := time.UnixMilli(ts).UTC()

	return FormattedDate{
		Label: fmt.Sprintf("%d %s", date.Day(), monthsGenitive[int(date.Month())-1]),
		ISO:   date.Format(ISOFormat),
	}
}

// ReformatDate восстанавливает ISO-дату из локализованной метки ("27 січня").
// Год берется текущий: метка года не содержит. Запись в декабре на январь
// следующего года даст прошедшую дату - известное ограничение, не исправляется.
func ReformatDate(label string) (string, error) {
	return reformatDate(label, time.Now().Year())
}

func reformatDate(label string, year int) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(label), " ", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateLabel, label)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateLabel, label)
	}

	monthIndex := -1
	for i, name := range monthsGenitive {
		if name == parts[1] {
			monthIndex = i
			break
		}
	}
	if monthIndex == -1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonthName, parts[1])
	}

	date := time.Date(year, time.Month(monthIndex+1), day, 0, 0, 0, 0, time.UTC)
	return date.Format(ISOFormat), nil
}

// ParseTime конвертирует duration вида "PT9H30M" в "09:30".
// Отсутствующая компонента часов или минут считается нулевой.
// Нераспознанный формат дает sentinel InvalidTime, а не ошибку.
func ParseTime(iso string) string {
	m := durationRe.FindStringSubmatch(iso)
	if m == nil {
		return InvalidTime
	}

	hours, minutes := "00", "00"
	if m[1] != "" {
		hours = pad2(m[1])
	}
	if m[2] != "" {
		minutes = pad2(m[2])
	}

	return hours + ":" + minutes
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
