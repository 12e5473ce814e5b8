package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Date is a calendar day backed by a DATE column, presented as "2006-01-02".
// The MySQL driver with parseTime=True hands DATE values back as time.Time;
// Scan normalizes that and the text forms other drivers produce.
type Date string

func (d Date) String() string { return string(d) }

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) { return string(d), nil }

// Scan implements sql.Scanner.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = Date(v.Format(dateLayout))
	case []byte:
		*d = Date(clip(string(v), len(dateLayout)))
	case string:
		*d = Date(clip(v, len(dateLayout)))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	return nil
}

// TimeOfDay is a wall-clock time backed by a TIME column, presented as
// "15:04". MySQL returns TIME values with seconds attached.
type TimeOfDay string

func (t TimeOfDay) String() string { return string(t) }

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) { return string(t), nil }

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
	case time.Time:
		*t = TimeOfDay(v.Format(timeLayout))
	case []byte:
		*t = TimeOfDay(clip(string(v), len(timeLayout)))
	case string:
		*t = TimeOfDay(clip(v, len(timeLayout)))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
	return nil
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
