package addressbook

import (
	"fmt"
	"strings"
)

// Record is a single contact: a name used as the unique key, an
// ordered list of phone numbers (duplicates permitted), and an
// optional birthday. Records are plain data owned by the AddressBook
// that holds them.
type Record struct {
	name     string
	phones   []Phone
	birthday Birthday
}

// NewRecord creates a record with the given name, no phones and no
// birthday. Empty or whitespace-only names are rejected.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Record{name: name}, nil
}

// Name returns the record's name.
func (r *Record) Name() string { return r.name }

// Phones returns the record's phone numbers in insertion order.
func (r *Record) Phones() []Phone { return r.phones }

// Birthday returns the record's birthday, which may be the "none" state.
func (r *Record) Birthday() Birthday { return r.birthday }

// AddPhone validates the raw number and appends it. No duplicate
// check is performed; the same number may appear more than once.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes the first phone whose value equals raw. It
// reports whether a removal occurred; a missing number is not an error.
func (r *Record) RemovePhone(raw string) bool {
	for i, phone := range r.phones {
		if phone.String() == raw {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return true
		}
	}
	return false
}

// EditPhone replaces one occurrence of oldRaw with newRaw: the new
// number is appended and the first occurrence of the old one removed.
// The new number is validated before anything is mutated, so a
// validation failure leaves the record unchanged.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	if r.FindPhone(oldRaw) == nil {
		return fmt.Errorf("old number %s: %w", oldRaw, ErrNotFound)
	}
	if err := r.AddPhone(newRaw); err != nil {
		return err
	}
	r.RemovePhone(oldRaw)
	return nil
}

// FindPhone returns the first phone whose value equals raw, or nil.
func (r *Record) FindPhone(raw string) *Phone {
	for i := range r.phones {
		if r.phones[i].String() == raw {
			return &r.phones[i]
		}
	}
	return nil
}

// SetBirthday replaces the record's birthday wholesale. An empty raw
// string clears it.
func (r *Record) SetBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = birthday
	return nil
}

// String renders the record as a one-line summary. The birthday
// suffix appears only when a birthday is set.
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, phone := range r.phones {
		values[i] = phone.String()
	}
	birthdayStr := ""
	if !r.birthday.IsZero() {
		birthdayStr = fmt.Sprintf(", birthday: %s", r.birthday)
	}
	return fmt.Sprintf("Contact name: %s, phones: %s%s",
		r.name, strings.Join(values, "; "), birthdayStr)
}
