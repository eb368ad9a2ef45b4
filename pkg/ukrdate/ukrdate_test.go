package ukrdate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	// 1737936000000 ms = 2025-01-27 00:00:00 UTC
	got := FormatDate("/Date(1737936000000)/")

	assert.Equal(t, "27 січня", got.Label)
	assert.Equal(t, "2025-01-27", got.ISO)
}

func TestFormatDate_PlainTimestamp(t *testing.T) {
	// Таймстамп без обертки /Date(...)/ тоже разбирается
	got := FormatDate("1737936000000")

	assert.Equal(t, "27 січня", got.Label)
}

func TestFormatDate_NoDigits(t *testing.T) {
	// Нет цифр - используется таймстамп 0
	got := FormatDate("garbage")

	assert.Equal(t, "1 січня", got.Label)
	assert.Equal(t, "1970-01-01", got.ISO)
}

func TestReformatDate(t *testing.T) {
	iso, err := reformatDate("27 січня", 2025)

	require.NoError(t, err)
	assert.Equal(t, "2025-01-27", iso)
}

func TestReformatDate_AllMonths(t *testing.T) {
	for i, month := range monthsGenitive {
		iso, err := reformatDate(fmt.Sprintf("5 %s", month), 2025)

		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("2025-%02d-05", i+1), iso)
	}
}

func TestReformatDate_UsesCurrentYear(t *testing.T) {
	iso, err := ReformatDate("15 жовтня")

	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d-10-15", time.Now().Year()), iso)
}

func TestReformatDate_InvalidMonth(t *testing.T) {
	_, err := ReformatDate("27 january")

	assert.ErrorIs(t, err, ErrInvalidMonthName)
}

func TestReformatDate_InvalidLabel(t *testing.T) {
	_, err := ReformatDate("січня")
	assert.ErrorIs(t, err, ErrInvalidDateLabel)

	_, err = ReformatDate("двадцять січня")
	assert.ErrorIs(t, err, ErrInvalidDateLabel)
}

func TestFormatDate_RoundTrip(t *testing.T) {
	// encodeDate(decodeDate(wire)) восстанавливает день и месяц
	// (в пределах одного календарного года)
	wire := "/Date(1737936000000)/"

	formatted := FormatDate(wire)
	iso, err := reformatDate(formatted.Label, 2025)

	require.NoError(t, err)
	assert.Equal(t, formatted.ISO, iso)
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PT9H30M", "09:30"},
		{"PT10H0M", "10:00"},
		{"PT0H0M", "00:00"},
		{"PT45M", "00:45"},
		{"PT14H", "14:00"},
		{"garbage", InvalidTime},
		{"", InvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTime(tt.in))
		})
	}
}
