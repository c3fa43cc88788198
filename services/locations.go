package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
)

// LocationsService fetches the country/state lists for the profile setup
// dropdowns. The backend endpoints may not exist yet; a 404 or a network
// failure falls back to the static data the client ships with, so the form
// never ends up with empty dropdowns.
type LocationsService struct {
	api *APIClient // nil when running offline
	log *slog.Logger
}

func NewLocationsService(api *APIClient, log *slog.Logger) *LocationsService {
	if log == nil {
		log = slog.Default()
	}
	return &LocationsService{api: api, log: log}
}

type countriesResponse struct {
	Countries []string `json:"countries"`
}

type statesResponse struct {
	Country string   `json:"country"`
	States  []string `json:"states"`
}

// Countries returns the supported country names.
func (s *LocationsService) Countries(ctx context.Context) []string {
	if s.api == nil {
		return FallbackCountries()
	}

	var resp countriesResponse
	if err := s.api.Get(ctx, "/api/locations/countries", &resp); err != nil {
		s.logFallback("countries", err)
		return FallbackCountries()
	}
	if len(resp.Countries) == 0 {
		return FallbackCountries()
	}
	return resp.Countries
}

// States returns the state names of one country.
func (s *LocationsService) States(ctx context.Context, country string) []string {
	if s.api == nil {
		return FallbackStates(country)
	}

	path := fmt.Sprintf("/api/locations/states?country=%s", url.QueryEscape(country))
	var resp statesResponse
	if err := s.api.Get(ctx, path, &resp); err != nil {
		s.logFallback("states", err)
		return FallbackStates(country)
	}
	if len(resp.States) == 0 {
		return FallbackStates(country)
	}
	return resp.States
}

func (s *LocationsService) logFallback(what string, err error) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
		s.log.Info("Locations API not implemented yet, using fallback data", "endpoint", what)
		return
	}
	s.log.Warn("Locations fetch failed, using fallback data", "endpoint", what, "err", err)
}

// FallbackCountries is the static country list bundled with the client.
func FallbackCountries() []string {
	return []string{"India", "UK", "USA"}
}

// FallbackStates is the static per-country state list bundled with the client.
func FallbackStates(country string) []string {
	fallback := map[string][]string{
		"India": {
			"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
			"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
			"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
			"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
			"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
			"Delhi", "Jammu and Kashmir", "Ladakh", "Puducherry", "Chandigarh",
			"Andaman and Nicobar Islands", "Dadra and Nagar Haveli and Daman and Diu",
			"Lakshadweep",
		},
		"UK": {"England", "Scotland", "Wales", "Northern Ireland"},
		"USA": {
			"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
			"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
			"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
			"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
			"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
			"New Hampshire", "New Jersey", "New Mexico", "New York",
			"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
			"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
			"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
			"West Virginia", "Wisconsin", "Wyoming", "District of Columbia",
		},
	}
	return fallback[country]
}
