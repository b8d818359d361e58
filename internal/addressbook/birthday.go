package addressbook

import (
	"fmt"
	"time"

	"github.com/username/contact-assistant/pkg/dateutil"
)

// NoBirthday is the display sentinel for an absent birthday.
const NoBirthday = "No birthday"

// Birthday is an optional calendar date in DD.MM.YYYY form. The zero
// value is the "none" state, which is distinct from any valid date.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday creates a Birthday from a raw string. An empty string
// yields the "none" state; anything else must parse strictly as a
// valid DD.MM.YYYY calendar date.
func NewBirthday(raw string) (Birthday, error) {
	if raw == "" {
		return Birthday{}, nil
	}
	date, err := dateutil.ParseDate(raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("%q: %w", raw, ErrInvalidBirthday)
	}
	return Birthday{value: raw, date: date}, nil
}

// IsZero reports whether no birthday is set.
func (b Birthday) IsZero() bool { return b.value == "" }

// Date returns the parsed calendar date. Only valid when IsZero is false.
func (b Birthday) Date() time.Time { return b.date }

// String returns the original DD.MM.YYYY text, or the NoBirthday
// sentinel when absent.
func (b Birthday) String() string {
	if b.IsZero() {
		return NoBirthday
	}
	return b.value
}
