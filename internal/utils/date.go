package utils

import (
	"fmt"
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/config"
)

// WeekKeyLayout - формат ключа недели для сервиса доступности (дата понедельника).
const WeekKeyLayout = "20060102"

func StartCurrentDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayOfWeek возвращает полночь понедельника недели, в которую попадает t.
// Воскресенье относится к неделе, начавшейся в предыдущий понедельник.
func MondayOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := StartCurrentDay(t)
	return time.Date(day.Year(), day.Month(), day.Day()-offset, 0, 0, 0, 0, t.Location())
}

func WeekKey(t time.Time) string {
	return MondayOfWeek(t).Format(WeekKeyLayout)
}

// AddMonths прибавляет месяцы, прижимая день к последнему дню целевого месяца:
// 31 января + 1 месяц = 28 (29) февраля, а не 3 марта.
func AddMonths(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month()+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// ParseDate парсит дату из строки в формате RFC3339, если не удается, то пробует парсить дату со временем, но без таймзоны
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Даты без таймзоны считаем в таймзоне из конфига
	if err != nil {
		location := config.TimeZone
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, location)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, location)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}
