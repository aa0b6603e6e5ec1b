package weather

import (
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	noon       = "12:00:00"
)

// Period: день, на который запрошен прогноз
type Period int

const (
	Today Period = iota
	Tomorrow
)

// Day возвращает календарную дату периода по UTC
func (p Period) Day(now time.Time) time.Time {
	day := now.UTC()
	if p == Tomorrow {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func (p Period) String() string {
	if p == Tomorrow {
		return "tomorrow"
	}
	return "today"
}

// Select выбирает точку прогноза для периода относительно now
func (p Period) Select(series *Series, now time.Time) (Sample, bool) {
	return SelectForDay(series, p.Day(now))
}

// SelectForDay возвращает первую точку ровно в 12:00:00 этого дня,
// иначе первую точку дня в порядке ответа. Ближайшая к полудню не ищется.
func SelectForDay(series *Series, day time.Time) (Sample, bool) {
	if series == nil {
		return Sample{}, false
	}
	date := day.Format(dateLayout)

	for _, s := range series.List {
		if !strings.HasPrefix(s.Timestamp, date) {
			continue
		}
		if _, clock, ok := strings.Cut(s.Timestamp, " "); ok && clock == noon {
			return s, true
		}
	}

	for _, s := range series.List {
		if strings.HasPrefix(s.Timestamp, date) {
			return s, true
		}
	}

	return Sample{}, false
}
