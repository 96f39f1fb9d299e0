package auth

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/pixil98/go-errors"
)

// MaxUsernameLength bounds account names; anything longer is rejected
// before it reaches the credential check.
const MaxUsernameLength = 24

// Account is a stored login identity. Only the bcrypt hash is persisted.
type Account struct {
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
}

// Validate satisfies storage.ValidatingSpec.
func (a *Account) Validate() error {
	el := errors.NewErrorList()

	if a.Name == "" {
		el.Add(fmt.Errorf("account name is required"))
	}
	if a.PasswordHash == "" {
		el.Add(fmt.Errorf("password_hash is required"))
	}

	return el.Err()
}

// ValidateUsername enforces the minimum identity rules: non-empty, letters
// only, and within the length bound.
func ValidateUsername(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxUsernameLength {
		return fmt.Errorf("name must be %d characters or fewer", MaxUsernameLength)
	}
	for _, r := range name {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("name must contain only letters")
		}
	}
	return nil
}
