package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/username/contact-assistant/internal/addressbook"
)

// iCalendar property names and feed identity.
const (
	propVersion = "VERSION"
	propProdID  = "PRODID"
	propUID     = "UID"
	propSummary = "SUMMARY"
	propDTStamp = "DTSTAMP"
	propDTStart = "DTSTART"

	icalVersion = "2.0"
	icalProdID  = "-//contact-assistant//birthday feed//EN"
	icalDomain  = "contact-assistant.local"
)

// emptyCalendar is written when there are no upcoming birthdays, so
// the output is still a valid VCALENDAR that clients accept.
const emptyCalendar = "BEGIN:VCALENDAR\r\nVERSION:" + icalVersion +
	"\r\nPRODID:" + icalProdID + "\r\nEND:VCALENDAR\r\n"

// WriteCalendar writes the upcoming-birthday report as an iCalendar
// feed with one all-day event per contact, dated on the adjusted
// (weekend-shifted) celebration date.
func WriteCalendar(w io.Writer, book *addressbook.AddressBook, today time.Time) error {
	upcoming := book.UpcomingBirthdays(today)
	if len(upcoming) == 0 {
		_, err := io.WriteString(w, emptyCalendar)
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(propVersion, icalVersion)
	cal.Props.SetText(propProdID, icalProdID)

	dtStamp := ical.NewProp(propDTStamp)
	dtStamp.SetDateTime(today.UTC())

	for _, entry := range upcoming {
		event := ical.NewEvent()
		event.Props.SetText(propUID,
			fmt.Sprintf("%s-%s@%s", entry.Name, entry.Date.Format("20060102"), icalDomain))
		event.Props.SetText(propSummary,
			fmt.Sprintf("Birthday: %s", entry.Name))

		dtStart := ical.NewProp(propDTStart)
		dtStart.SetDate(entry.Date)
		event.Props.Set(dtStart)
		event.Props.Set(dtStamp)

		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}
