package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testLoginChatSuite struct {
	BaseSuite
}

func TestLoginChatSuite(t *testing.T) {
	suite.Run(t, &testLoginChatSuite{})
}

// TestFullClientFlow walks the whole client journey: phone login with a
// verification code, profile setup, chat list, conversation feed, sending a
// message and searching for it.
func (s *testLoginChatSuite) TestFullClientFlow() {
	const phone = "+33612345678"
	var token string

	s.Run("Step 1: Request a verification code", func() {
		s.Step("Requesting OTP")
		code := s.Do(http.MethodPost, "/api/auth/otp", "",
			map[string]string{"phone": phone}, nil)
		s.Require().Equal(http.StatusAccepted, code)
	})

	s.Run("Step 2: Wrong code is rejected, right code logs in", func() {
		s.Step("Verifying OTP")
		status := s.Do(http.MethodPost, "/api/auth/verify", "",
			map[string]string{"phone": phone, "code": "000000"}, nil)
		s.Require().Equal(http.StatusUnauthorized, status)

		// Offline runs surface the code in the log only.
		otp, found := s.logs.LastAttr("MOCK: verification code issued", "code")
		s.Require().True(found, "verification code not found in logs")

		var resp struct {
			Token string `json:"token"`
		}
		status = s.Do(http.MethodPost, "/api/auth/verify", "",
			map[string]string{"phone": phone, "code": otp}, &resp)
		s.Require().Equal(http.StatusOK, status)
		s.Require().NotEmpty(resp.Token)
		token = resp.Token
	})

	s.Run("Step 3: Complete the profile", func() {
		s.Step("Saving profile")
		status := s.Do(http.MethodPost, "/api/auth/profile", token, map[string]string{
			"first_name": "Asha",
			"last_name":  "Verma",
			"country":    "India",
			"state":      "Karnataka",
		}, nil)
		s.Require().Equal(http.StatusOK, status)
	})

	s.Run("Step 4: Chat list shows every conversation", func() {
		s.Step("Listing chats")
		var resp struct {
			Chats []struct {
				ChatID      int    `json:"chat_id"`
				Name        string `json:"name"`
				LastMessage string `json:"last_message"`
			} `json:"chats"`
		}
		status := s.Do(http.MethodGet, "/api/chats", token, nil, &resp)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Len(resp.Chats, 4)
	})

	s.Run("Step 5: Feed renders with date separators", func() {
		s.Step("Reading feed")
		var resp struct {
			Feed []struct {
				Kind  string `json:"kind"`
				Label string `json:"label"`
			} `json:"feed"`
		}
		status := s.Do(http.MethodGet, "/api/chats/1/feed", token, nil, &resp)
		s.Require().Equal(http.StatusOK, status)

		kinds := map[string]int{}
		labels := []string{}
		for _, item := range resp.Feed {
			kinds[item.Kind]++
			if item.Kind == "date" {
				labels = append(labels, item.Label)
			}
		}
		// Day boundaries shift with the wall clock, so only the shape is
		// pinned down: all 7 messages survive and the history spans at
		// least 3 calendar days.
		s.Require().Equal(7, kinds["message"])
		s.Require().GreaterOrEqual(kinds["date"], 3)
		s.Require().NotEmpty(labels)
	})

	s.Run("Step 6: Send a message and find it by search", func() {
		s.Step("Posting and searching")
		var posted struct {
			Message struct {
				ID string `json:"id"`
			} `json:"message"`
		}
		status := s.Do(http.MethodPost, "/api/chats/1/messages", token,
			map[string]string{"content": "quarterly sync rescheduled"}, &posted)
		s.Require().Equal(http.StatusCreated, status)
		s.Require().NotEmpty(posted.Message.ID)

		status = s.Do(http.MethodPost, "/api/chats/1/messages", token,
			map[string]string{"content": "   "}, nil)
		s.Require().Equal(http.StatusNoContent, status)

		var found struct {
			IDs []string `json:"ids"`
		}
		status = s.Do(http.MethodGet, "/api/chats/1/search?q=rescheduled", token, nil, &found)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Contains(found.IDs, posted.Message.ID)
	})

	s.Run("Step 7: Location pickers fall back offline", func() {
		s.Step("Loading pickers")
		var countries struct {
			Countries []string `json:"countries"`
		}
		status := s.Do(http.MethodGet, "/api/locations/countries", "", nil, &countries)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Contains(countries.Countries, "India")

		var states struct {
			States []string `json:"states"`
		}
		status = s.Do(http.MethodGet, "/api/locations/states?country=India", "", nil, &states)
		s.Require().Equal(http.StatusOK, status)
		s.Require().Contains(states.States, "Karnataka")
	})

	s.Run("Step 8: Logout clears the persisted state", func() {
		s.Step("Logging out")
		status := s.Do(http.MethodPost, "/api/auth/logout", token, nil, nil)
		s.Require().Equal(http.StatusOK, status)

		var state struct {
			Found bool `json:"found"`
		}
		status = s.Do(http.MethodGet, "/api/auth/state", "", nil, &state)
		s.Require().Equal(http.StatusOK, status)
		s.Require().False(state.Found)
	})
}
