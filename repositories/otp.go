//go:generate go run go.uber.org/mock/mockgen -source=otp.go -destination=../mocks/mock_otp_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IOTPRepository interface {
	StorePending(phone string, pending PendingVerification, ttl time.Duration) error
	GetPending(phone string) (PendingVerification, bool, error)
	IncrementAttempts(phone string) (int, error)
	Delete(phone string) error
}

// PendingVerification is one in-flight OTP challenge. Only the Argon2id
// hash of the code is stored; the clear code lives in the SMS and nowhere
// else.
type PendingVerification struct {
	CodeHash  string    `json:"code_hash"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// OTPRepository keeps pending verifications in BadgerDB under
// "otp:{phone}". Badger's native TTL garbage-collects abandoned challenges;
// ExpiresAt is still stored so verification can answer "expired" instead of
// "not found" while the entry lingers.
type OTPRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewOTPRepository(db *badger.DB, log *slog.Logger) OTPRepository {
	return OTPRepository{db: db, log: log}
}

func otpKey(phone string) []byte {
	return []byte(fmt.Sprintf("otp:%s", phone))
}

func (r OTPRepository) StorePending(phone string, pending PendingVerification, ttl time.Duration) error {
	bytes, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("encoding pending verification: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(otpKey(phone), bytes).WithTTL(2 * ttl)
		return txn.SetEntry(entry)
	})
}

func (r OTPRepository) GetPending(phone string) (PendingVerification, bool, error) {
	var pending PendingVerification
	found := false

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(otpKey(phone))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &pending)
		})
	})
	if err != nil {
		return PendingVerification{}, false, err
	}
	return pending, found, nil
}

// IncrementAttempts bumps the failed-attempt counter and returns the new
// value. The caller decides when to lock the challenge out.
func (r OTPRepository) IncrementAttempts(phone string) (int, error) {
	attempts := 0
	err := r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(otpKey(phone))
		if err != nil {
			return err
		}
		var pending PendingVerification
		if err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &pending)
		}); err != nil {
			return err
		}

		pending.Attempts++
		attempts = pending.Attempts

		bytes, err := json.Marshal(pending)
		if err != nil {
			return err
		}
		return txn.Set(otpKey(phone), bytes)
	})
	return attempts, err
}

func (r OTPRepository) Delete(phone string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(otpKey(phone))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}
