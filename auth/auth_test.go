package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-client/errors"
)

func TestValidateLogin(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"E164 number", "+33612345678", true},
		{"E164 long number", "+919876543210", true},
		{"Missing plus", "33612345678", false},
		{"Letters", "+33ABCDEF", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLogin(LoginRequest{Phone: tt.phone})
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errors.ErrInvalidPhone)
			}
		})
	}
}

func TestValidateProfile(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateProfile(ProfileRequest{
		FirstName: "Alice",
		LastName:  "Martin",
		Country:   "France",
		State:     "Île-de-France",
	}))
	req.NoError(ValidateProfile(ProfileRequest{FirstName: "Alice", LastName: "Martin"}))
	req.ErrorIs(ValidateProfile(ProfileRequest{FirstName: "Alice"}), errors.ErrInvalidProfile)
	req.ErrorIs(ValidateProfile(ProfileRequest{}), errors.ErrInvalidProfile)
}

func TestGenerateCode_ShapeAndSpread(t *testing.T) {
	req := require.New(t)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		req.NoError(err)
		req.Len(code, 6)
		seen[code] = true
	}
	// 50 draws over a million values colliding into one bucket would mean
	// a broken generator.
	req.Greater(len(seen), 1)
}

func TestHashCode_And_CompareCode(t *testing.T) {
	req := require.New(t)

	hash, err := HashCode("123456")
	req.NoError(err)
	req.Contains(hash, "$argon2id$")

	match, err := CompareCode("123456", hash)
	req.NoError(err)
	req.True(match)

	match, err = CompareCode("654321", hash)
	req.NoError(err)
	req.False(match)

	_, err = CompareCode("123456", "garbage")
	req.Error(err)
}

func TestGenerateToken_And_ValidateToken(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-42", "+33612345678", time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("user-42", claims.UserID)
	req.Equal("+33612345678", claims.Phone)
}

func TestValidateToken_RejectsExpired(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-42", "+33612345678", -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	require.Error(t, err)
}
