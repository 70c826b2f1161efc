package gofatfs

import (
	"time"
)

// fatEpochYear is the year FAT dates count from.
const fatEpochYear = 1980

// Now is the wall clock read by FetchCurrentDateTime.
var Now = time.Now

// FetchCurrentDateTime packs the current local time into a FAT date and time pair.
// If the clock yields no usable calendar time both halves are 0.
// Each half is also 0 on its own if its fields are out of range.
func FetchCurrentDateTime() (date, tm uint16) {
	t := Now()
	if t.IsZero() {
		return 0, 0
	}
	return PackDateTime(t)
}

// PackDateTime packs t into a FAT date and time pair. See PackFields.
func PackDateTime(t time.Time) (date, tm uint16) {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return PackFields(year, int(month), day, hour, minute, second)
}

// PackFields packs broken-down calendar fields.
// The date is 0 unless month is within 1-12 and day within 1-31, the time is 0 unless
// hour is within 0-23 and minute and second within 0-59.
// Years outside of 1980-2107 are not rejected, they wrap within the 7 bit year field.
func PackFields(year, month, day, hour, minute, second int) (date, tm uint16) {
	if 1 <= month && month <= 12 && 1 <= day && day <= 31 {
		date = uint16((year-fatEpochYear)&0x7F)<<9 | uint16(month&0xF)<<5 | uint16(day&0x1F)
	}
	if 0 <= hour && hour <= 23 && 0 <= minute && minute <= 59 && 0 <= second && second <= 59 {
		tm = uint16(hour&0x1F)<<11 | uint16(minute&0x3F)<<5 | uint16((second>>1)&0x1F)
	}
	return date, tm
}

// PackDate returns the date half of PackDateTime.
func PackDate(t time.Time) uint16 {
	date, _ := PackDateTime(t)
	return date
}

// PackTime returns the time half of PackDateTime. Seconds are stored with 2 second granularity.
func PackTime(t time.Time) uint16 {
	_, tm := PackDateTime(t)
	return tm
}

// ConvertFATDateTime unpacks a FAT date and time pair into a local time.
//
// There is no error case. Fields outside of their range are normalized like time.Date does,
// so a month of 0 results in December of the previous year and a day of 0 in the last day of
// the previous month. A pair of zeros therefore yields 1979-11-30 00:00:00.
func ConvertFATDateTime(date, tm uint16) time.Time {
	return time.Date(
		fatEpochYear+int(date>>9),
		time.Month((date>>5)&0x0F),
		int(date&0x1F),
		int(tm>>11),
		int((tm>>5)&0x3F),
		int(tm&0x1F)<<1,
		0,
		time.Local,
	)
}

// ParseDate is the strict variant of the date half of ConvertFATDateTime:
//
//	Bits 0-4:  day of month, 1-31
//	Bits 5-8:  month of year, 1-12
//	Bits 9-15: years since 1980, 0-127
//
// The result is midnight UTC. A day or month of 0 is invalid and results in time.Time{},
// so that time.Time.IsZero() reports it.
// A month above 12 is carried over into the year.
func ParseDate(input uint16) time.Time {
	day := input & 0x1F
	month := input & 0x1E0 >> 5
	year := input & 0xFE00 >> 9

	if day == 0 || month == 0 {
		return time.Time{}
	}

	return time.Date(fatEpochYear+int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
}

// ParseTime is the strict variant of the time half of ConvertFATDateTime:
//
//	Bits 0-4:   2 second count, 0-29
//	Bits 5-10:  minutes, 0-59
//	Bits 11-15: hours, 0-23
//
// The result is on January 1 of year 1, UTC, so midnight is time.Time{}.
// Values beyond 23:59:58 are clamped to 23:59:59 instead of rolling over into the next day.
func ParseTime(input uint16) time.Time {
	seconds := int(input&0x1F) * 2
	minutes := input & 0x7E0 >> 5
	hours := input & 0xF800 >> 11

	result := time.Date(1, 1, 1, int(hours), int(minutes), seconds, 0, time.UTC)
	if result.Day() > 1 {
		return time.Date(1, 1, 1, 23, 59, 59, 0, time.UTC)
	}
	return result
}
