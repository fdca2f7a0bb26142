package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/qolzam/backoffice/internal/validation"
)

// Date is a calendar day. It travels as "YYYY-MM-DD" both on the wire and
// to the database.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string in UTC.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation(validation.DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(validation.DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan accepts driver time values as well as textual dates, keeping only the
// day part.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = Date{time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)}
		return nil
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanText(s string) error {
	if len(s) > len(validation.DateLayout) {
		s = s[:len(validation.DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
