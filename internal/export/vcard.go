// Package export converts the address book to and from interchange
// formats: vCard 4.0 for the contacts themselves and iCalendar for
// the upcoming-birthday feed.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/username/contact-assistant/internal/addressbook"
	"github.com/username/contact-assistant/pkg/dateutil"
	"go.uber.org/zap"
)

// vCardDateLayout is the BDAY form written on export. Import also
// accepts the basic 20060102 form and the application's own layout.
const vCardDateLayout = "2006-01-02"

var importDateLayouts = []string{
	vCardDateLayout,
	"20060102",
	dateutil.DateLayout,
}

// WriteVCards writes every record in the book as a vCard 4.0 stream.
func WriteVCards(w io.Writer, book *addressbook.AddressBook) error {
	enc := vcard.NewEncoder(w)
	for _, record := range book.Records() {
		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, record.Name())
		for _, phone := range record.Phones() {
			card.AddValue(vcard.FieldTelephone, phone.String())
		}
		if !record.Birthday().IsZero() {
			card.SetValue(vcard.FieldBirthday,
				record.Birthday().Date().Format(vCardDateLayout))
		}
		vcard.ToV4(card)
		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("failed to encode vCard for %s: %w", record.Name(), err)
		}
	}
	return nil
}

// ReadVCards decodes a vCard stream and merges the cards into the
// book. Cards without a name, unparsable cards, and phone numbers
// that do not fit the 10-digit format are logged and skipped so that
// one bad entry does not abort the whole import. It returns the
// number of cards merged.
func ReadVCards(r io.Reader, book *addressbook.AddressBook, logger *zap.Logger) (int, error) {
	dec := vcard.NewDecoder(r)
	imported := 0

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("failed to decode vCard stream: %w", err)
		}

		name := card.PreferredValue(vcard.FieldFormattedName)
		if name == "" {
			name = card.PreferredValue(vcard.FieldName)
		}
		if name == "" {
			logger.Warn("Skipping vCard without a name")
			continue
		}

		record := book.Find(name)
		if record == nil {
			record, err = addressbook.NewRecord(name)
			if err != nil {
				logger.Warn("Skipping vCard with invalid name", zap.Error(err))
				continue
			}
			book.AddRecord(record)
		}

		for _, tel := range card.Values(vcard.FieldTelephone) {
			digits := digitsOnly(tel)
			if record.FindPhone(digits) != nil {
				continue
			}
			if err := record.AddPhone(digits); err != nil {
				logger.Warn("Skipping phone that does not fit the 10-digit format",
					zap.String("name", name),
					zap.String("phone", tel))
			}
		}

		if bday := card.PreferredValue(vcard.FieldBirthday); bday != "" {
			if date, ok := parseVCardDate(bday); ok {
				if err := record.SetBirthday(dateutil.FormatDate(date)); err != nil {
					logger.Warn("Skipping unusable birthday",
						zap.String("name", name),
						zap.String("birthday", bday))
				}
			} else {
				logger.Warn("Skipping unparsable birthday",
					zap.String("name", name),
					zap.String("birthday", bday))
			}
		}

		imported++
	}
	return imported, nil
}

// parseVCardDate tries the accepted import layouts in order.
func parseVCardDate(value string) (time.Time, bool) {
	for _, layout := range importDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// digitsOnly strips everything except decimal digits from a phone
// value, so formatted numbers like "050-123-45-67" can round-trip.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return b.String()
}
