package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/username/contact-assistant/internal/addressbook"
)

// ConsoleView implements View on a line-oriented terminal.
type ConsoleView struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsoleView creates a console view reading from in and writing to out
func NewConsoleView(in io.Reader, out io.Writer) *ConsoleView {
	return &ConsoleView{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ShowMessage prints the message followed by a newline.
func (v *ConsoleView) ShowMessage(message string) {
	fmt.Fprintln(v.out, message)
}

// Input prints the prompt and reads one line, with the trailing
// newline stripped. io.EOF is returned when the input stream ends.
func (v *ConsoleView) Input(prompt string) (string, error) {
	fmt.Fprint(v.out, prompt)
	line, err := v.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ShowContacts prints each contact on its own line, or a placeholder
// when the book is empty.
func (v *ConsoleView) ShowContacts(contacts []*addressbook.Record) {
	if len(contacts) == 0 {
		fmt.Fprintln(v.out, "The address book is empty.")
		return
	}
	for _, contact := range contacts {
		fmt.Fprintln(v.out, contact)
	}
}
