package addressbook

import (
	"fmt"
	"time"

	"github.com/username/contact-assistant/pkg/dateutil"
)

// AddressBook is a keyed collection of records. It owns a private
// name-to-record map and keeps a separate key list so that listing
// and birthday queries iterate in insertion order.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// UpcomingBirthday is one entry of the upcoming-birthday report: the
// contact's name and the adjusted (weekend-shifted) celebration date.
type UpcomingBirthday struct {
	Name string
	Date time.Time
}

// String renders the entry as "name: DD.MM.YYYY".
func (u UpcomingBirthday) String() string {
	return fmt.Sprintf("%s: %s", u.Name, dateutil.FormatDate(u.Date))
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts the record under its name. Re-adding an existing
// name replaces the stored record wholesale (last-write-wins); the
// original insertion position is kept.
func (b *AddressBook) AddRecord(record *Record) {
	if _, ok := b.records[record.Name()]; !ok {
		b.order = append(b.order, record.Name())
	}
	b.records[record.Name()] = record
}

// Find returns the record with the given name, or nil.
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record with the given name. It returns
// ErrNotFound when no such record exists.
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("record with name %s: %w", name, ErrNotFound)
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int { return len(b.records) }

// UpcomingBirthdays reports contacts whose next birthday celebration
// falls within 7 days of today. For each record with a birthday, the
// anniversary is projected onto today's year, rolled to next year if
// it has already passed (a birthday falling exactly on today is not
// rolled), and then shifted off a weekend onto the following Monday.
// The weekend shift happens once, after the rollover decision, and
// the rolled date is not re-checked. Entries carry the adjusted date
// and follow the book's insertion order; callers wanting a
// date-sorted report must sort the result themselves.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []UpcomingBirthday {
	today = dateutil.StartOfDay(today)
	var upcoming []UpcomingBirthday

	for _, record := range b.Records() {
		if record.Birthday().IsZero() {
			continue
		}
		birthDate := record.Birthday().Date()

		// Project the anniversary onto the current year.
		candidate := time.Date(today.Year(), birthDate.Month(), birthDate.Day(),
			0, 0, 0, 0, today.Location())
		if candidate.Before(today) {
			candidate = time.Date(today.Year()+1, birthDate.Month(), birthDate.Day(),
				0, 0, 0, 0, today.Location())
		}

		adjusted := dateutil.ShiftOffWeekend(candidate)

		daysUntil := dateutil.DaysBetween(today, adjusted)
		if daysUntil >= 0 && daysUntil <= 7 {
			upcoming = append(upcoming, UpcomingBirthday{
				Name: record.Name(),
				Date: adjusted,
			})
		}
	}
	return upcoming
}
