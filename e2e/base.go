package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"

	"chat-client/fixtures"
	"chat-client/format"
	"chat-client/httpapi"
	"chat-client/moderation"
	"chat-client/projection"
	"chat-client/repositories"
	"chat-client/search"
	"chat-client/services"
)

// BaseSuite boots the whole client stack against a throwaway badger store
// and serves it over httptest, unless E2E_BASE_URL points at a live
// instance.
type BaseSuite struct {
	suite.Suite
	Config Config

	baseURL string
	client  *http.Client
	logs    *recordSink
}

// recordSink is a slog handler that keeps every record, so scenarios can
// read back values only surfaced in logs, like the offline verification
// code.
type recordSink struct {
	mu      sync.Mutex
	records []slog.Record
}

func (s *recordSink) Enabled(context.Context, slog.Level) bool { return true }

func (s *recordSink) Handle(_ context.Context, r slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r.Clone())
	return nil
}

func (s *recordSink) WithAttrs([]slog.Attr) slog.Handler { return s }
func (s *recordSink) WithGroup(string) slog.Handler      { return s }

// LastAttr scans records newest first for a message carrying the attribute.
func (s *recordSink) LastAttr(message, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.records) - 1; i >= 0; i-- {
		if s.records[i].Message != message {
			continue
		}
		var value string
		s.records[i].Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				value = a.Value.String()
				return false
			}
			return true
		})
		if value != "" {
			return value, true
		}
	}
	return "", false
}

func (s *BaseSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	s.client = &http.Client{Timeout: 10 * time.Second}
	s.logs = &recordSink{}

	if s.Config.BaseURL != "" {
		s.baseURL = s.Config.BaseURL
		return
	}

	log := slog.New(s.logs)

	db, err := badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = db.Close() })

	index, err := search.NewInMemoryIndex(log)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = index.Close() })

	clock := format.SystemClock()
	formatter := format.NewFormatter(clock, time.UTC, "", log)
	grouper := projection.NewGrouper(time.UTC, log)

	masker, err := moderation.NewMasker(nil, '*')
	s.Require().NoError(err)

	router := httpapi.NewRouter(httpapi.Deps{
		Auth: services.NewAuthService(
			nil,
			repositories.NewOTPRepository(db, log),
			repositories.NewAuthStateRepository(db, log),
			clock, log,
			5*time.Minute, 24*time.Hour, 3,
		),
		Chats: services.NewChatService(
			fixtures.NewSource(clock), grouper, formatter, clock, index, log,
		),
		Contacts:  services.NewContactsService(nil, repositories.NewContactRepository(db, log), log),
		Locations: services.NewLocationsService(nil, log),
		Masker:    masker,
		Log:       log,
	})

	server := httptest.NewServer(router)
	s.T().Cleanup(server.Close)
	s.baseURL = server.URL
}

// Step prints a colorized scenario header.
func (s *BaseSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Do sends a JSON request and decodes the JSON answer into out (out may be
// nil). The raw body is dumped when E2E_DEBUG_JSON is on.
func (s *BaseSuite) Do(method, path, token string, body, out any) int {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	if s.Config.DebugJSON {
		s.T().Logf("HTTP %s %s [%d]\n%s", method, path, resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, out))
	}
	return resp.StatusCode
}
