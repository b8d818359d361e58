// Package bot implements the interactive command loop of the contact
// assistant. It owns no terminal I/O itself: everything the user sees
// goes through the view, and the address book is persisted through
// the storage layer on exit.
package bot

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/username/contact-assistant/internal/addressbook"
	"github.com/username/contact-assistant/internal/storage"
	"github.com/username/contact-assistant/internal/view"
	"github.com/username/contact-assistant/pkg/dateutil"
	"go.uber.org/zap"
)

// Bot is the interactive assistant: it reads commands from the view,
// mutates the address book, and saves it when the session ends.
type Bot struct {
	book   *addressbook.AddressBook
	store  *storage.Store
	view   view.View
	logger *zap.Logger
	now    func() time.Time
}

// command describes one entry of the command vocabulary.
type command struct {
	name        string
	usage       string
	description string
	minArgs     int
	run         func(b *Bot, args []string)
}

// New creates a new bot
func New(book *addressbook.AddressBook, store *storage.Store, v view.View, logger *zap.Logger) *Bot {
	return &Bot{
		book:   book,
		store:  store,
		view:   v,
		logger: logger,
		now:    dateutil.Today,
	}
}

// Run executes the command loop until the user exits or input ends.
// The address book is saved exactly once, on the way out.
func (b *Bot) Run() error {
	b.view.ShowMessage("Welcome to the assistant bot!")

	for {
		line, err := b.view.Input("Enter a command: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				b.logger.Info("Input stream closed, saving and exiting")
				return b.quit()
			}
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		verb := strings.ToLower(fields[0])
		args := fields[1:]

		if verb == "close" || verb == "exit" {
			b.view.ShowMessage("Good bye!")
			return b.quit()
		}

		cmd, ok := vocabulary[verb]
		if !ok {
			b.view.ShowMessage("Invalid command.")
			continue
		}
		if len(args) < cmd.minArgs {
			b.view.ShowMessage("Usage: " + cmd.usage)
			continue
		}
		cmd.run(b, args)
	}
}

// quit persists the book. Called on every exit path of Run.
func (b *Bot) quit() error {
	if err := b.store.Save(b.book); err != nil {
		b.logger.Error("Failed to save address book", zap.Error(err))
		return err
	}
	return nil
}

// showError presents a recoverable error to the user. Validation and
// not-found errors are expected during normal use and shown verbatim;
// anything else is also logged.
func (b *Bot) showError(err error) {
	if !errors.Is(err, addressbook.ErrInvalidPhone) &&
		!errors.Is(err, addressbook.ErrInvalidBirthday) &&
		!errors.Is(err, addressbook.ErrEmptyName) &&
		!errors.Is(err, addressbook.ErrNotFound) {
		b.logger.Warn("Command failed", zap.Error(err))
	}
	b.view.ShowMessage("Error: " + err.Error())
}
