// Package utils
package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	durationHours   = regexp.MustCompile(`(\d+)H`)
	durationMinutes = regexp.MustCompile(`(\d+)M`)
	durationSeconds = regexp.MustCompile(`(\d+)S`)
)

// FormatTimeLike normalizes a database time-of-day value into "HH:MM:SS".
// Drivers disagree about TIME columns: some hand back time.Time, some a
// duration, some ISO-8601 duration text like "PT13H5M43S" and some
// unpadded strings like "3:5:4". Unrecognized strings pass through
// unchanged, nil stays nil. Never fails.
func FormatTimeLike(val interface{}) *string {
	switch v := val.(type) {
	case nil:
		return nil
	case *string:
		if v == nil {
			return nil
		}
		return FormatTimeLike(*v)
	case string:
		return formatTimeString(v)
	case []byte:
		return formatTimeString(string(v))
	case time.Time:
		s := v.Format("15:04:05")
		return &s
	case time.Duration:
		s := HMSFromSeconds(int(v / time.Second))
		return &s
	default:
		s := fmt.Sprint(val)
		return &s
	}
}

func formatTimeString(val string) *string {
	if strings.Count(val, ":") == 2 {
		parts := strings.Split(val, ":")
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		s, errS := strconv.Atoi(parts[2])
		if errH != nil || errM != nil || errS != nil {
			return &val
		}
		padded := fmt.Sprintf("%02d:%02d:%02d", h, m, s)
		return &padded
	}
	if strings.HasPrefix(val, "PT") {
		// ISO 8601 duration, components independent and optional
		rest := val[2:]
		hours, minutes, seconds := 0, 0, 0
		if match := durationHours.FindStringSubmatch(rest); match != nil {
			hours = StrToInt(match[1], 0)
		}
		if match := durationMinutes.FindStringSubmatch(rest); match != nil {
			minutes = StrToInt(match[1], 0)
		}
		if match := durationSeconds.FindStringSubmatch(rest); match != nil {
			seconds = StrToInt(match[1], 0)
		}
		formatted := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
		return &formatted
	}
	return &val
}

// HMSFromSeconds renders a second count as "HH:MM:SS".
func HMSFromSeconds(total int) string {
	hours, rem := total/3600, total%3600
	return fmt.Sprintf("%02d:%02d:%02d", hours, rem/60, rem%60)
}

// MinutesToHMS renders a minute count as "HH:MM:SS" for API consumers
// while the database keeps plain minutes.
func MinutesToHMS(minutes int) string {
	return HMSFromSeconds(minutes * 60)
}

// SplitDateTime splits an instant into its calendar date (midnight UTC)
// and an "HH:MM:SS" time-of-day string.
func SplitDateTime(t time.Time) (time.Time, string) {
	t = t.UTC()
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return date, t.Format("15:04:05")
}

// FormatDate renders a date column as "YYYY-MM-DD", keeping nil as nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}
