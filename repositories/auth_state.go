//go:generate go run go.uber.org/mock/mockgen -source=auth_state.go -destination=../mocks/mock_auth_state_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const authStateKey = "authstate"

type IAuthStateRepository interface {
	Save(state StoredAuthState) error
	Load() (StoredAuthState, bool, error)
	Clear() error
}

// StoredAuthState is the client-side auth snapshot persisted across app
// restarts: who is logged in and how far through onboarding they got.
type StoredAuthState struct {
	UserID           string `json:"user_id"`
	Phone            string `json:"phone"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Country          string `json:"country,omitempty"`
	State            string `json:"state,omitempty"`
	Token            string `json:"token,omitempty"`
	LoggedIn         bool   `json:"logged_in"`
	ProfileCompleted bool   `json:"profile_completed"`
	SeenOnboarding   bool   `json:"seen_onboarding"`
}

// AuthStateRepository persists the auth snapshot in BadgerDB, the client's
// local key-value store. Values are JSON: the snapshot is a single small
// record read once at startup, and JSON keeps it inspectable with the
// standard badger tooling.
type AuthStateRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAuthStateRepository(db *badger.DB, log *slog.Logger) AuthStateRepository {
	return AuthStateRepository{db: db, log: log}
}

func (r AuthStateRepository) Save(state StoredAuthState) error {
	bytes, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding auth state: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(authStateKey), bytes)
	})
}

// Load returns the persisted snapshot. The boolean is false on first run,
// before any state has ever been saved.
func (r AuthStateRepository) Load() (StoredAuthState, bool, error) {
	var state StoredAuthState
	found := false

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(authStateKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &state)
		})
	})
	if err != nil {
		return StoredAuthState{}, false, err
	}

	if found {
		r.log.Debug("Auth state loaded",
			"logged_in", state.LoggedIn, "profile_completed", state.ProfileCompleted)
	}
	return state, found, nil
}

// Clear wipes the snapshot on logout.
func (r AuthStateRepository) Clear() error {
	return r.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(authStateKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}
