//go:generate go run go.uber.org/mock/mockgen -source=contact.go -destination=../mocks/mock_contact_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"chat-client/domain"
)

const contactPrefix = "contact:"

type IContactRepository interface {
	StoreContacts(contacts []domain.Contact) error
	GetContacts() ([]domain.Contact, error)
}

// ContactRepository caches synced address-book contacts in BadgerDB under
// "contact:{phone}". Phone numbers are E.164 so lexicographic key order
// keeps the scan deterministic.
type ContactRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewContactRepository(db *badger.DB, log *slog.Logger) ContactRepository {
	return ContactRepository{db: db, log: log}
}

func (r ContactRepository) StoreContacts(contacts []domain.Contact) error {
	return r.db.Update(func(txn *badger.Txn) error {
		for _, contact := range contacts {
			key := fmt.Sprintf("%s%s", contactPrefix, contact.Phone)
			bytes, err := json.Marshal(contact)
			if err != nil {
				return fmt.Errorf("encoding contact %s: %w", contact.Phone, err)
			}
			if err = txn.Set([]byte(key), bytes); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetContacts returns all cached contacts in key order.
func (r ContactRepository) GetContacts() ([]domain.Contact, error) {
	var contacts []domain.Contact

	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(contactPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var contact domain.Contact
				if err := json.Unmarshal(val, &contact); err != nil {
					// Corrupted cache rows are skipped, not fatal.
					r.log.Warn("Skipping unreadable contact row",
						"key", string(it.Item().Key()), "err", err)
					return nil
				}
				contacts = append(contacts, contact)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return contacts, err
}
