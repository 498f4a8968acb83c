package tracker

import (
	"encoding/json"
	"fmt"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02"

// TimestampFormat is the format used for transaction timestamps in the
// snapshot file.
const TimestampFormat = "2006-01-02 15:04:05"

// Date represents a date with day-level granularity.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// Today returns the current date.
func Today() Date { return NewDate(time.Now().Date()) }

// Year returns current year.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns current day of the month.
func (d Date) Day() int { return d.d }

// String format the date in date RFC3339
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// ParseDate parses a Date from a string. It is lenient and accepts formats like "2025-7-1".
func ParseDate(str string) (Date, error) {
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, readDateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date in data file: %w", err)
	}
	*d = on
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// Timestamp represents the instant a transaction was recorded. It is
// persisted with second granularity, in the local time zone, matching the
// snapshot file format.
type Timestamp struct {
	t time.Time
}

// NewTimestamp creates a Timestamp from a time.Time, truncated to the second
// and normalized to the local time zone, the zone the snapshot file is
// written in.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{t: t.Local().Truncate(time.Second)} }

// Date returns the day the timestamp falls on.
func (ts Timestamp) Date() Date { return NewDate(ts.t.Date()) }

// Time returns the underlying time.Time.
func (ts Timestamp) Time() time.Time { return ts.t }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// IsZero returns true if the timestamp is the zero value.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }

func (ts Timestamp) String() string { return ts.t.Format(TimestampFormat) }

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.String())
}

func (ts *Timestamp) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	t, err := time.ParseInLocation(TimestampFormat, str, time.Local)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q want format %q: %w", str, TimestampFormat, err)
	}
	*ts = Timestamp{t: t}
	return nil
}
