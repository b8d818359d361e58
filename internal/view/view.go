package view

import "github.com/username/contact-assistant/internal/addressbook"

// View is the presentation surface the command loop talks to. The
// core never reads or writes the terminal itself, so alternative
// front ends only need to implement these three methods.
type View interface {
	// ShowMessage displays a single message line to the user.
	ShowMessage(message string)

	// Input displays the prompt and returns one line of user input.
	Input(prompt string) (string, error)

	// ShowContacts displays a list of contacts, one per line.
	ShowContacts(contacts []*addressbook.Record)
}
