package entity

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// AccessAuth is the only session scope currently issued. Tokens carrying any
// other scope are rejected by the middleware.
const AccessAuth = "auth"

// Session is one currently-valid login: the scope tag plus the exact signed
// token handed to the client. Order is insertion order; logout removes the
// first entry whose token matches by value.
type Session struct {
	Access string `json:"access"`
	Token  string `json:"token"`
}

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash; the plaintext never persists past signup.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	Sessions  []Session
	CreatedAt time.Time
	UpdatedAt time.Time
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the invariants a user record must satisfy before it is
// persisted. Uniqueness of username/email is enforced by the store and
// surfaced as a duplicate-key failure, not here.
func (u *User) Validate() *ValidationError {
	v := &ValidationError{Fields: map[string]string{}}
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(u.Email)

	// Length rules count characters, not bytes.
	if u.Username == "" {
		v.Fields["username"] = "is required"
	} else if utf8.RuneCountInString(u.Username) < 3 {
		v.Fields["username"] = "must be at least 3 characters long"
	}
	if u.Email == "" {
		v.Fields["email"] = "is required"
	} else if utf8.RuneCountInString(u.Email) < 8 {
		v.Fields["email"] = "must be at least 8 characters long"
	} else if !emailPattern.MatchString(u.Email) {
		v.Fields["email"] = "must be a valid email"
	}
	if u.Password == "" {
		v.Fields["password"] = "is required"
	}

	if len(v.Fields) == 0 {
		return nil
	}
	return v
}

// SessionIndex returns the position of the first session whose token matches
// exactly, or -1.
func (u *User) SessionIndex(token string) int {
	for i, s := range u.Sessions {
		if s.Token == token {
			return i
		}
	}
	return -1
}

// HasSession reports whether the user holds a live session for the given
// token under the given scope.
func (u *User) HasSession(token, access string) bool {
	for _, s := range u.Sessions {
		if s.Token == token && s.Access == access {
			return true
		}
	}
	return false
}
