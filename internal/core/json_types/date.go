package json_types

import (
	"encoding/json"
	"time"

	"github.com/suchimauz/slot-appointment-service/internal/utils"
)

// LocalDateTimeLayout - дата со временем без таймзоны, как ее отдает и
// принимает сервис доступности.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

type DateTime struct {
	Date time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Date: t}
}

func (t *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	parsedDate, err := utils.ParseDate(str)
	if err != nil {
		return err
	}

	*t = DateTime{Date: parsedDate}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Date.Format(LocalDateTimeLayout))
}
