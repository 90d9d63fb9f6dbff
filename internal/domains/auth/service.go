package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/raveberry/netinfo-agent/internal/constants"
	"github.com/raveberry/netinfo-agent/internal/errs"
)

const sessionMarker = "admin"

type Service struct {
	passwordHash  []byte
	sessionSecret []byte
}

func NewService(passwordHash, sessionSecret string) *Service {
	return &Service{
		passwordHash:  []byte(passwordHash),
		sessionSecret: []byte(sessionSecret),
	}
}

// Login checks the admin password and returns a signed session token.
func (s *Service) Login(password string) (token string, err error) {
	if err = bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return token, fmt.Errorf("Login: %w", errs.ErrInvalidPassword)
	}

	return s.sign(sessionMarker), nil
}

// IsAdmin reports whether the request carries a validly signed session
// cookie. Anything else, including a missing cookie, means no.
func (s *Service) IsAdmin(r *http.Request) bool {
	cookie, err := r.Cookie(constants.SessionCookieName)
	if err != nil {
		return false
	}

	marker, _, ok := strings.Cut(cookie.Value, ".")
	if !ok || marker != sessionMarker {
		return false
	}

	return hmac.Equal([]byte(cookie.Value), []byte(s.sign(marker)))
}

func (s *Service) sign(marker string) string {
	mac := hmac.New(sha256.New, s.sessionSecret)
	mac.Write([]byte(marker))

	return marker + "." + hex.EncodeToString(mac.Sum(nil))
}
