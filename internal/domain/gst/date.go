package gst

import (
	"strconv"
	"time"
)

// IsValidDate indica si s es una fecha de calendario real con formato YYYY-MM-DD.
// La fecha debe sobrevivir a time.Date sin normalizarse (29-02 en año no bisiesto,
// 30-02 o mes 13 se rechazan).
func IsValidDate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	y, ok := digits(s[0:4])
	if !ok {
		return false
	}
	m, ok := digits(s[5:7])
	if !ok {
		return false
	}
	d, ok := digits(s[8:10])
	if !ok {
		return false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return t.Year() == y && int(t.Month()) == m && t.Day() == d
}

// IsValidPeriod indica si p tiene formato YYYY-MM con mes 01..12.
func IsValidPeriod(p string) bool {
	if len(p) != 7 || p[4] != '-' {
		return false
	}
	if _, ok := digits(p[0:4]); !ok {
		return false
	}
	m, ok := digits(p[5:7])
	return ok && m >= 1 && m <= 12
}

// InPeriod indica si la fecha (YYYY-MM-DD) cae dentro del período (YYYY-MM).
func InPeriod(date, period string) bool {
	return len(date) >= len(period) && date[:len(period)] == period
}

// digits convierte un grupo puramente numérico; rechaza signos y espacios que strconv aceptaría.
func digits(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
