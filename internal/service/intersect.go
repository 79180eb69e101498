package service

import (
	"time"

	"github.com/bagdasarian/employees-pair/internal/domain"
)

const hoursPerDay = 24

// Clock возвращает текущий момент; подменяется в тестах
type Clock func() time.Time

// Today обрезает время часов до календарной даты
func (c Clock) Today() time.Time {
	return truncateToDate(c())
}

// Intersect возвращает пересечение периодов двух назначений.
// Открытое назначение не ограничивает конец периода; если открыты оба,
// концом считается today.
func Intersect(first, second domain.Assignment, today time.Time) (time.Time, time.Time) {
	startDate := second.DateFrom
	if first.DateFrom.After(second.DateFrom) {
		startDate = first.DateFrom
	}

	var endDate time.Time
	switch {
	case first.DateTo != nil && second.DateTo == nil:
		endDate = *first.DateTo
	case first.DateTo == nil && second.DateTo != nil:
		endDate = *second.DateTo
	case first.DateTo == nil && second.DateTo == nil:
		endDate = truncateToDate(today)
	default:
		endDate = *second.DateTo
		if first.DateTo.Before(*second.DateTo) {
			endDate = *first.DateTo
		}
	}

	return startDate, endDate
}

// Overlaps - пересечение непустое (совпадение границ дает ноль дней)
func Overlaps(startDate, endDate time.Time) bool {
	return !startDate.After(endDate)
}

// DaysBetween считает разницу в днях между двумя датами
func DaysBetween(startDate, endDate time.Time) int {
	return dayNumber(endDate) - dayNumber(startDate)
}

func dayNumber(date time.Time) int {
	return int(truncateToDate(date).Unix() / (hoursPerDay * 60 * 60))
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
