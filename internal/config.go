package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,required=true"`
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`
	Debug    bool   `env:"DEBUG,default=false"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`

	// Empty means offline: the OTP flow stays local and the pickers use
	// the embedded fallback lists.
	APIBaseURL  string        `env:"API_BASE_URL"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,default=10s"`

	OTPTTL            time.Duration `env:"OTP_TTL,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	MaxOTPAttempts    int           `env:"MAX_OTP_ATTEMPTS,required=true"`

	// Device rendering preferences.
	TimeLayout string `env:"TIME_LAYOUT,default=15:04"`
	Timezone   string `env:"TIMEZONE"`

	MaskedWords     string `env:"MASKED_WORDS"`
	CharReplacement string `env:"CHARACTER_REPLACEMENT,default=*"`
}

// Location resolves the device calendar, host-local when unset.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// MaskedWordList splits the comma-separated MASKED_WORDS value.
func (c Config) MaskedWordList() []string {
	if c.MaskedWords == "" {
		return nil
	}
	parts := strings.Split(c.MaskedWords, ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
