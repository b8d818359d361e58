package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/username/contact-assistant/internal/addressbook"
	"go.uber.org/zap"
)

// snapshot is the on-disk form of the whole address book. Records are
// stored as an ordered array, not a map, so the book's insertion
// order survives a round-trip.
type snapshot struct {
	Records []recordSnapshot `json:"records"`
}

// recordSnapshot is the on-disk form of a single record. An empty
// birthday string means no birthday is set.
type recordSnapshot struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// Store persists the address book as a JSON snapshot file.
type Store struct {
	filePath string
	logger   *zap.Logger
}

// NewStore creates a new snapshot store
func NewStore(filePath string, logger *zap.Logger) *Store {
	return &Store{
		filePath: filePath,
		logger:   logger,
	}
}

// Load reads the snapshot file and reconstructs the address book. A
// missing file is not an error: it yields an empty book, to be
// created on first save.
func (s *Store) Load() (*addressbook.AddressBook, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info("No snapshot file found, starting with an empty book",
				zap.String("file", s.filePath))
			return addressbook.New(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	book := addressbook.New()
	for _, rs := range snap.Records {
		record, err := addressbook.NewRecord(rs.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid record in snapshot: %w", err)
		}
		for _, phone := range rs.Phones {
			if err := record.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("invalid phone in snapshot for %s: %w", rs.Name, err)
			}
		}
		if err := record.SetBirthday(rs.Birthday); err != nil {
			return nil, fmt.Errorf("invalid birthday in snapshot for %s: %w", rs.Name, err)
		}
		book.AddRecord(record)
	}

	s.logger.Info("Address book loaded",
		zap.String("file", s.filePath),
		zap.Int("records", book.Len()))

	return book, nil
}

// Save writes the address book to the snapshot file, overwriting any
// previous snapshot.
func (s *Store) Save(book *addressbook.AddressBook) error {
	snap := snapshot{Records: make([]recordSnapshot, 0, book.Len())}
	for _, record := range book.Records() {
		rs := recordSnapshot{Name: record.Name()}
		for _, phone := range record.Phones() {
			rs.Phones = append(rs.Phones, phone.String())
		}
		if !record.Birthday().IsZero() {
			rs.Birthday = record.Birthday().String()
		}
		snap.Records = append(snap.Records, rs)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}

	s.logger.Info("Address book saved",
		zap.String("file", s.filePath),
		zap.Int("records", book.Len()))

	return nil
}
