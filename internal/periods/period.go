package periods

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned when a period string cannot be parsed
var ErrInvalidPeriod = errors.New("invalid period")

// Unit is the granularity a period covers
type Unit string

const (
	UnitMonth    Unit = "month"
	UnitEternity Unit = "eternity"
)

const (
	monthLayout    = "2006-01"
	eternityString = "ETERNITY"
)

// Period is a span of time over which a variable's value is defined.
// The zero value is the eternity period.
type Period struct {
	unit  Unit
	start time.Time
}

// Month returns the period covering the given calendar month
func Month(year int, month time.Month) Period {
	return Period{
		unit:  UnitMonth,
		start: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
	}
}

// MonthOf returns the calendar month containing t
func MonthOf(t time.Time) Period {
	return Month(t.Year(), t.Month())
}

// Eternity returns the period used for values that do not vary over time
func Eternity() Period {
	return Period{}
}

// Parse reads a period in YYYY-MM form, or the literal ETERNITY.
func Parse(s string) (Period, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, eternityString) {
		return Eternity(), nil
	}

	t, err := time.Parse(monthLayout, trimmed)
	if err != nil {
		return Period{}, fmt.Errorf("%w %q, use YYYY-MM or ETERNITY", ErrInvalidPeriod, s)
	}
	return MonthOf(t), nil
}

func (p Period) Unit() Unit {
	if p.unit == "" {
		return UnitEternity
	}
	return p.unit
}

func (p Period) IsEternity() bool {
	return p.Unit() == UnitEternity
}

// Start is the first instant of the period. Eternity starts at the zero time.
func (p Period) Start() time.Time {
	if p.IsEternity() {
		return time.Time{}
	}
	return p.start
}

// Before reports whether p starts strictly before other.
// Eternity comes before every month, including year 0 ones.
func (p Period) Before(other Period) bool {
	if p.IsEternity() || other.IsEternity() {
		return p.IsEternity() && !other.IsEternity()
	}
	return p.start.Before(other.start)
}

// Equal reports whether both periods have the same unit and start
func (p Period) Equal(other Period) bool {
	return p.Unit() == other.Unit() && p.Start().Equal(other.Start())
}

func (p Period) String() string {
	if p.IsEternity() {
		return eternityString
	}
	return p.start.Format(monthLayout)
}

func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Period) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
