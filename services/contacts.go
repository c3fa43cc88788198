package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"chat-client/domain"
	"chat-client/repositories"
)

// ContactsService syncs the device address book with the backend to find
// which contacts are registered, and caches the result locally so the
// contacts screen works offline.
type ContactsService struct {
	api  *APIClient // nil when running offline
	repo repositories.IContactRepository
	log  *slog.Logger
}

func NewContactsService(api *APIClient, repo repositories.IContactRepository, log *slog.Logger) *ContactsService {
	if log == nil {
		log = slog.Default()
	}
	return &ContactsService{api: api, repo: repo, log: log}
}

type syncRequest struct {
	Phones []string `json:"phones"`
}

type syncResponse struct {
	Registered []string `json:"registered"`
}

// Sync filters out contacts without a phone number, asks the backend which
// of the rest are registered users, caches and returns the merged result.
// Without a backend every contact is cached as unregistered.
func (s *ContactsService) Sync(ctx context.Context, device []domain.Contact) ([]domain.Contact, error) {
	withPhones := FilterWithPhones(device)
	if len(withPhones) == 0 {
		s.log.Info("No contacts with phone numbers to sync")
		return nil, nil
	}

	if s.api != nil {
		phones := lo.Map(withPhones, func(c domain.Contact, _ int) string { return c.Phone })

		var resp syncResponse
		if err := s.api.Post(ctx, "/api/contacts/sync", syncRequest{Phones: phones}, &resp); err != nil {
			return nil, fmt.Errorf("syncing contacts: %w", err)
		}

		registered := lo.SliceToMap(resp.Registered, func(p string) (string, bool) { return p, true })
		for i := range withPhones {
			withPhones[i].Registered = registered[withPhones[i].Phone]
		}
	}

	if err := s.repo.StoreContacts(withPhones); err != nil {
		return nil, fmt.Errorf("caching contacts: %w", err)
	}

	s.log.Info("Contacts synced", "count", len(withPhones))
	return withPhones, nil
}

// Cached returns the last synced contact list.
func (s *ContactsService) Cached() ([]domain.Contact, error) {
	return s.repo.GetContacts()
}

// FilterWithPhones keeps only contacts that can actually be messaged.
func FilterWithPhones(contacts []domain.Contact) []domain.Contact {
	return lo.Filter(contacts, func(c domain.Contact, _ int) bool { return c.Phone != "" })
}
