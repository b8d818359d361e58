package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/contact-assistant/internal/addressbook"
	"go.uber.org/zap"
)

func buildBook(t *testing.T) *addressbook.AddressBook {
	t.Helper()
	book := addressbook.New()

	john, err := addressbook.NewRecord("John Smith")
	require.NoError(t, err)
	require.NoError(t, john.AddPhone("1234567890"))
	require.NoError(t, john.AddPhone("0987654321"))
	require.NoError(t, john.SetBirthday("12.06.1990"))
	book.AddRecord(john)

	jane, err := addressbook.NewRecord("Jane")
	require.NoError(t, err)
	require.NoError(t, jane.AddPhone("5555555555"))
	book.AddRecord(jane)

	return book
}

func TestVCardRoundTrip(t *testing.T) {
	book := buildBook(t)

	var buf bytes.Buffer
	require.NoError(t, WriteVCards(&buf, book))
	assert.Contains(t, buf.String(), "FN:John Smith")
	assert.Contains(t, buf.String(), "BDAY:1990-06-12")

	restored := addressbook.New()
	count, err := ReadVCards(&buf, restored, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	john := restored.Find("John Smith")
	require.NotNil(t, john)
	assert.Equal(t, "12.06.1990", john.Birthday().String())
	require.Len(t, john.Phones(), 2)
	assert.Equal(t, "1234567890", john.Phones()[0].String())

	jane := restored.Find("Jane")
	require.NotNil(t, jane)
	assert.True(t, jane.Birthday().IsZero())
}

func TestReadVCardsMergesIntoExistingRecord(t *testing.T) {
	book := buildBook(t)

	var buf bytes.Buffer
	require.NoError(t, WriteVCards(&buf, book))

	// Importing the same stream again must not duplicate phones.
	count, err := ReadVCards(&buf, book, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, book.Len())
	assert.Len(t, book.Find("John Smith").Phones(), 2)
}

func TestReadVCardsStripsFormatting(t *testing.T) {
	stream := "BEGIN:VCARD\r\nVERSION:4.0\r\nFN:Formatted\r\nTEL:123-456-78-90\r\nEND:VCARD\r\n"

	book := addressbook.New()
	count, err := ReadVCards(strings.NewReader(stream), book, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	record := book.Find("Formatted")
	require.NotNil(t, record)
	require.Len(t, record.Phones(), 1)
	assert.Equal(t, "1234567890", record.Phones()[0].String())
}

func TestWriteCalendar(t *testing.T) {
	book := buildBook(t)
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, WriteCalendar(&buf, book, monday))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "Birthday: John Smith")
	assert.Contains(t, out, "20240612")
	// Jane has no birthday and must not appear.
	assert.NotContains(t, out, "Jane")
}

func TestWriteCalendarEmpty(t *testing.T) {
	book := addressbook.New()

	var buf bytes.Buffer
	require.NoError(t, WriteCalendar(&buf, book, time.Now()))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.NotContains(t, out, "BEGIN:VEVENT")
}
