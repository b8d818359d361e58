package bot

import (
	"fmt"
	"os"
	"strings"

	"github.com/username/contact-assistant/internal/addressbook"
	"github.com/username/contact-assistant/internal/export"
	"go.uber.org/zap"
)

// vocabulary maps command verbs to their handlers. close/exit are
// handled directly by the loop since they terminate it.
var vocabulary = map[string]command{}

// commandOrder keeps the listing of `commands` deterministic.
var commandOrder []command

func register(c command) {
	vocabulary[c.name] = c
	commandOrder = append(commandOrder, c)
}

func init() {
	register(command{
		name: "hello", usage: "hello",
		description: "Greets the user.",
		run: func(b *Bot, args []string) {
			b.view.ShowMessage("How can I help you?")
		},
	})
	register(command{
		name: "add", usage: "add [name] [phone]",
		description: "Add a new contact or phone number to an existing contact.",
		minArgs:     2,
		run:         (*Bot).cmdAdd,
	})
	register(command{
		name: "change", usage: "change [name] [old_phone] [new_phone]",
		description: "Change an existing phone number for a contact.",
		minArgs:     3,
		run:         (*Bot).cmdChange,
	})
	register(command{
		name: "phone", usage: "phone [name]",
		description: "Show phone numbers of a specific contact.",
		minArgs:     1,
		run:         (*Bot).cmdPhone,
	})
	register(command{
		name: "all", usage: "all",
		description: "Display all contacts in the address book.",
		run: func(b *Bot, args []string) {
			b.view.ShowContacts(b.book.Records())
		},
	})
	register(command{
		name: "delete", usage: "delete [name]",
		description: "Delete a contact from the address book.",
		minArgs:     1,
		run:         (*Bot).cmdDelete,
	})
	register(command{
		name: "remove-phone", usage: "remove-phone [name] [phone]",
		description: "Remove a phone number from a contact.",
		minArgs:     2,
		run:         (*Bot).cmdRemovePhone,
	})
	register(command{
		name: "add-birthday", usage: "add-birthday [name] [DD.MM.YYYY]",
		description: "Add a birthday to a contact.",
		minArgs:     2,
		run:         (*Bot).cmdAddBirthday,
	})
	register(command{
		name: "show-birthday", usage: "show-birthday [name]",
		description: "Show the birthday of a specific contact.",
		minArgs:     1,
		run:         (*Bot).cmdShowBirthday,
	})
	register(command{
		name: "birthdays", usage: "birthdays",
		description: "Show contacts with upcoming birthdays in the next 7 days.",
		run:         (*Bot).cmdBirthdays,
	})
	register(command{
		name: "export", usage: "export [file.vcf]",
		description: "Export all contacts to a vCard file.",
		run:         (*Bot).cmdExport,
	})
	register(command{
		name: "import", usage: "import [file.vcf]",
		description: "Import contacts from a vCard file.",
		minArgs:     1,
		run:         (*Bot).cmdImport,
	})
	register(command{
		name: "calendar", usage: "calendar [file.ics]",
		description: "Export upcoming birthdays as an iCalendar file.",
		run:         (*Bot).cmdCalendar,
	})
	register(command{
		name: "commands", usage: "commands",
		description: "Return all available commands.",
		run:         (*Bot).cmdCommands,
	})
	register(command{
		name: "close/exit", usage: "close",
		description: "Save the address book and exit the program.",
		run:         func(b *Bot, args []string) {},
	})
}

func (b *Bot) cmdAdd(args []string) {
	name, phone := args[0], args[1]
	record := b.book.Find(name)
	if record == nil {
		newRecord, err := addressbook.NewRecord(name)
		if err != nil {
			b.showError(err)
			return
		}
		if err := newRecord.AddPhone(phone); err != nil {
			b.showError(err)
			return
		}
		b.book.AddRecord(newRecord)
		b.view.ShowMessage("Contact added.")
		return
	}
	if err := record.AddPhone(phone); err != nil {
		b.showError(err)
		return
	}
	b.view.ShowMessage("Phone added to the contact.")
}

func (b *Bot) cmdChange(args []string) {
	record := b.book.Find(args[0])
	if record == nil {
		b.view.ShowMessage("Contact not found.")
		return
	}
	if err := record.EditPhone(args[1], args[2]); err != nil {
		b.showError(err)
		return
	}
	b.view.ShowMessage("Phone changed.")
}

func (b *Bot) cmdPhone(args []string) {
	record := b.book.Find(args[0])
	if record == nil {
		b.view.ShowMessage("Contact not found.")
		return
	}
	phones := record.Phones()
	if len(phones) == 0 {
		b.view.ShowMessage("No phones for this contact.")
		return
	}
	values := make([]string, len(phones))
	for i, phone := range phones {
		values[i] = phone.String()
	}
	b.view.ShowMessage(strings.Join(values, "; "))
}

func (b *Bot) cmdDelete(args []string) {
	if err := b.book.Delete(args[0]); err != nil {
		b.showError(err)
		return
	}
	b.view.ShowMessage("Contact deleted.")
}

func (b *Bot) cmdRemovePhone(args []string) {
	record := b.book.Find(args[0])
	if record == nil {
		b.view.ShowMessage("Contact not found.")
		return
	}
	if record.RemovePhone(args[1]) {
		b.view.ShowMessage("Phone removed.")
	} else {
		b.view.ShowMessage("Phone not found.")
	}
}

func (b *Bot) cmdAddBirthday(args []string) {
	record := b.book.Find(args[0])
	if record == nil {
		b.view.ShowMessage("Contact not found.")
		return
	}
	if err := record.SetBirthday(args[1]); err != nil {
		b.showError(err)
		return
	}
	b.view.ShowMessage("Birthday added.")
}

func (b *Bot) cmdShowBirthday(args []string) {
	record := b.book.Find(args[0])
	if record == nil {
		b.view.ShowMessage("Contact not found.")
		return
	}
	b.view.ShowMessage(record.Birthday().String())
}

func (b *Bot) cmdBirthdays(args []string) {
	upcoming := b.book.UpcomingBirthdays(b.now())
	if len(upcoming) == 0 {
		b.view.ShowMessage("No upcoming birthdays in the next 7 days.")
		return
	}
	for _, entry := range upcoming {
		b.view.ShowMessage(entry.String())
	}
}

func (b *Bot) cmdExport(args []string) {
	path := "contacts.vcf"
	if len(args) > 0 {
		path = args[0]
	}
	file, err := os.Create(path)
	if err != nil {
		b.showError(fmt.Errorf("failed to create export file: %w", err))
		return
	}
	defer file.Close()
	if err := export.WriteVCards(file, b.book); err != nil {
		b.showError(err)
		return
	}
	b.logger.Info("Contacts exported", zap.String("file", path), zap.Int("records", b.book.Len()))
	b.view.ShowMessage(fmt.Sprintf("Exported %d contact(s) to %s.", b.book.Len(), path))
}

func (b *Bot) cmdImport(args []string) {
	file, err := os.Open(args[0])
	if err != nil {
		b.showError(fmt.Errorf("failed to open import file: %w", err))
		return
	}
	defer file.Close()
	count, err := export.ReadVCards(file, b.book, b.logger)
	if err != nil {
		b.showError(err)
		return
	}
	b.logger.Info("Contacts imported", zap.String("file", args[0]), zap.Int("cards", count))
	b.view.ShowMessage(fmt.Sprintf("Imported %d contact(s) from %s.", count, args[0]))
}

func (b *Bot) cmdCalendar(args []string) {
	path := "birthdays.ics"
	if len(args) > 0 {
		path = args[0]
	}
	file, err := os.Create(path)
	if err != nil {
		b.showError(fmt.Errorf("failed to create calendar file: %w", err))
		return
	}
	defer file.Close()
	if err := export.WriteCalendar(file, b.book, b.now()); err != nil {
		b.showError(err)
		return
	}
	b.view.ShowMessage(fmt.Sprintf("Birthday calendar written to %s.", path))
}

func (b *Bot) cmdCommands(args []string) {
	b.view.ShowMessage("Available commands:")
	for _, cmd := range commandOrder {
		b.view.ShowMessage(fmt.Sprintf("- %s: %s Usage: %s", cmd.name, cmd.description, cmd.usage))
	}
}
