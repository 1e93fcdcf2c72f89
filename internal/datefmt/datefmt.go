// Package datefmt - кодек исторического строкового формата дат базы:
// "DD.MM.YYYY HH:MM" (локальное время, минутное разрешение, без секунд
// и без зоны). Все вычисления в приложении идут через time.Time,
// строка существует только на границе хранения.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// Layout - формат в терминах time.Format.
const Layout = "02.01.2006 15:04"

// Format сериализует время в "DD.MM.YYYY HH:MM" с нулевым паддингом.
// Секунды отбрасываются: два события внутри одной минуты неотличимы.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Now - текущее время в формате хранения.
func Now() string {
	return Format(time.Now())
}

// Parse - строгий разбор "DD.MM.YYYY HH:MM".
// time.Parse здесь не годится: он принимает часть кривых строк и
// возвращает ошибки в терминах layout-синтаксиса. Разбираем позиционно
// и отклоняем всё, что не совпадает с форматом или не является
// реальной календарной датой.
func Parse(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("datefmt: empty date string")
	}

	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("datefmt: %q must contain date and time separated by a space", s)
	}

	dateFields := strings.Split(parts[0], ".")
	if len(dateFields) != 3 {
		return time.Time{}, fmt.Errorf("datefmt: %q has malformed date part", s)
	}
	timeFields := strings.Split(parts[1], ":")
	if len(timeFields) != 2 {
		return time.Time{}, fmt.Errorf("datefmt: %q has malformed time part", s)
	}

	day, err := parseField(dateFields[0], 2)
	if err != nil {
		return time.Time{}, fmt.Errorf("datefmt: %q has invalid day: %w", s, err)
	}
	month, err := parseField(dateFields[1], 2)
	if err != nil {
		return time.Time{}, fmt.Errorf("datefmt: %q has invalid month: %w", s, err)
	}
	year, err := parseField(dateFields[2], 4)
	if err != nil {
		return time.Time{}, fmt.Errorf("datefmt: %q has invalid year: %w", s, err)
	}
	hour, err := parseField(timeFields[0], 2)
	if err != nil {
		return time.Time{}, fmt.Errorf("datefmt: %q has invalid hour: %w", s, err)
	}
	minute, err := parseField(timeFields[1], 2)
	if err != nil {
		return time.Time{}, fmt.Errorf("datefmt: %q has invalid minute: %w", s, err)
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("datefmt: %q has month out of range", s)
	}
	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("datefmt: %q has day out of range", s)
	}
	if hour > 23 {
		return time.Time{}, fmt.Errorf("datefmt: %q has hour out of range", s)
	}
	if minute > 59 {
		return time.Time{}, fmt.Errorf("datefmt: %q has minute out of range", s)
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	// time.Date нормализует 31.02 в 03.03 - ловим такие даты сравнением.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, fmt.Errorf("datefmt: %q is not a valid calendar date", s)
	}

	return t, nil
}

// parseField разбирает поле фиксированной ширины из ASCII-цифр.
// strconv.Atoi тут слишком либерален: пропускает знак и любую ширину.
func parseField(s string, width int) (int, error) {
	if len(s) != width {
		return 0, fmt.Errorf("expected %d digits, got %q", width, s)
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-numeric component %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
