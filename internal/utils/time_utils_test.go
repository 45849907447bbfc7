// Package utils
package utils

import (
	"testing"
	"time"
)

func ExampleFormatTimeLike() {
	FormatTimeLike("12:34:56")
}

func ExampleMinutesToHMS() {
	MinutesToHMS(720)
}

func TestFormatTimeLikeStrings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"12:00:00", "12:00:00"},
		{"3:5:4", "03:05:04"},
		{"03:05:04", "03:05:04"},
		{"PT1H5M", "01:05:00"},
		{"PT13H5M43S", "13:05:43"},
		{"PT45S", "00:00:45"},
		{"PT", "00:00:00"},
		{"not a time", "not a time"},
		{"1:2", "1:2"},
		{"aa:bb:cc", "aa:bb:cc"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := FormatTimeLike(test.input)
		if result == nil || *result != test.expected {
			fail++
			t.Errorf("FormatTimeLike(%q) = %v; expected %q", test.input, result, test.expected)
		}
		pass++
	}
	t.Logf("TestFormatTimeLikeStrings: %d pass, %d fail", pass, fail)
}

func TestFormatTimeLikeNil(t *testing.T) {
	if result := FormatTimeLike(nil); result != nil {
		t.Errorf("FormatTimeLike(nil) = %v; expected nil", result)
	}
	var ptr *string
	if result := FormatTimeLike(ptr); result != nil {
		t.Errorf("FormatTimeLike((*string)(nil)) = %v; expected nil", result)
	}
}

func TestFormatTimeLikeTypes(t *testing.T) {
	instant := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	if result := FormatTimeLike(instant); result == nil || *result != "09:26:53" {
		t.Errorf("FormatTimeLike(time.Time) = %v; expected 09:26:53", result)
	}
	if result := FormatTimeLike(90 * time.Minute); result == nil || *result != "01:30:00" {
		t.Errorf("FormatTimeLike(time.Duration) = %v; expected 01:30:00", result)
	}
	if result := FormatTimeLike([]byte("7:8:9")); result == nil || *result != "07:08:09" {
		t.Errorf("FormatTimeLike([]byte) = %v; expected 07:08:09", result)
	}
	padded := "3:5:4"
	if result := FormatTimeLike(&padded); result == nil || *result != "03:05:04" {
		t.Errorf("FormatTimeLike(*string) = %v; expected 03:05:04", result)
	}
}

func TestHMSFromSeconds(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
		{129600, "36:00:00"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := HMSFromSeconds(test.input)
		if result != test.expected {
			fail++
			t.Errorf("HMSFromSeconds(%d) = %q; expected %q", test.input, result, test.expected)
		}
		pass++
	}
	t.Logf("TestHMSFromSeconds: %d pass, %d fail", pass, fail)
}

func TestMinutesToHMS(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "00:00:00"},
		{65, "01:05:00"},
		{720, "12:00:00"},
		{1441, "24:01:00"},
	}
	pass := 0
	fail := 0
	for _, test := range tests {
		result := MinutesToHMS(test.input)
		if result != test.expected {
			fail++
			t.Errorf("MinutesToHMS(%d) = %q; expected %q", test.input, result, test.expected)
		}
		pass++
	}
	t.Logf("TestMinutesToHMS: %d pass, %d fail", pass, fail)
}

func TestSplitDateTime(t *testing.T) {
	instant := time.Date(2026, 7, 1, 22, 15, 30, 0, time.UTC)
	date, tod := SplitDateTime(instant)
	if !date.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("SplitDateTime date = %v; expected 2026-07-01 midnight UTC", date)
	}
	if tod != "22:15:30" {
		t.Errorf("SplitDateTime time = %q; expected 22:15:30", tod)
	}

	zone := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2026, 7, 2, 1, 30, 0, 0, zone)
	date, tod = SplitDateTime(local)
	if !date.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("SplitDateTime should convert to UTC before splitting, got date %v", date)
	}
	if tod != "22:30:00" {
		t.Errorf("SplitDateTime local conversion time = %q; expected 22:30:00", tod)
	}
}

func TestSplitDateTimeAcrossMidnight(t *testing.T) {
	// a rest deadline is derived as checkout instant + rest minutes; a
	// late checkout must roll the date forward
	checkOut := time.Date(2026, 8, 31, 23, 50, 0, 0, time.UTC)
	restUntil := checkOut.Add(30 * time.Minute)
	date, tod := SplitDateTime(restUntil)
	if !date.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("rest deadline date = %v; expected next calendar date 2026-09-01", date)
	}
	if tod != "00:20:00" {
		t.Errorf("rest deadline time = %q; expected 00:20:00", tod)
	}
}

func TestFormatDate(t *testing.T) {
	if result := FormatDate(nil); result != nil {
		t.Errorf("FormatDate(nil) = %v; expected nil", result)
	}
	date := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if result := FormatDate(&date); result == nil || *result != "2026-01-05" {
		t.Errorf("FormatDate = %v; expected 2026-01-05", result)
	}
}
