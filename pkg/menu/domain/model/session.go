package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const MinimumAge = 18

var (
	ErrEmptyUsername = errors.New("username must not be empty")
	ErrUnderage      = errors.New("age is missing or below the minimum age")
)

const (
	emptyUsernameMessage = "Inserisci il nome utente."
	underageMessage      = "Accesso negato: devi essere maggiorenne."
)

type Session struct {
	ID            uuid.UUID
	Username      string
	Age           *int
	AccessGranted bool
	Error         string
	Cart          Cart
	// Notice holds the purchase confirmation until the next page is shown.
	Notice    string
	CreatedAt time.Time
}

func NewSession(id uuid.UUID) *Session {
	return &Session{
		ID:        id,
		CreatedAt: time.Now().UTC(),
	}
}

// AttemptLogin checks the username first and the age only when the username is set.
// A failed attempt leaves AccessGranted untouched, and a granted session keeps the
// username and age it logged in with.
func (s *Session) AttemptLogin(username string, age *int) error {
	if err := ValidateCredentials(username, age); err != nil {
		if !s.AccessGranted {
			s.Username = username
			s.Age = age
			s.Error = LoginErrorMessage(err)
		}
		return err
	}

	s.Username = username
	s.Age = age
	s.AccessGranted = true
	s.Error = ""
	return nil
}

// Reset brings the session back to the state of a fresh visitor.
func (s *Session) Reset() {
	s.Cart.Clear()
	s.Username = ""
	s.Age = nil
	s.AccessGranted = false
	s.Error = ""
}

func ValidateCredentials(username string, age *int) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if age == nil || *age < MinimumAge {
		return ErrUnderage
	}
	return nil
}

func LoginErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyUsername):
		return emptyUsernameMessage
	case errors.Is(err, ErrUnderage):
		return underageMessage
	default:
		return ""
	}
}
