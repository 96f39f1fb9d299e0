package auth

import (
	"fmt"
	"strings"

	"github.com/dungeonmerc/go-merc/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// Manager answers credential checks against the account store. It is the
// only place passwords are hashed or compared; sessions never see hashes.
type Manager struct {
	accounts storage.Storer[*Account]
}

func NewManager(accounts storage.Storer[*Account]) *Manager {
	return &Manager{accounts: accounts}
}

// Exists reports whether an account with the given name is registered.
func (m *Manager) Exists(username string) bool {
	return m.accounts.Get(accountKey(username)) != nil
}

// Validate checks username/password against the stored bcrypt hash.
// Unknown accounts and wrong passwords both simply report false.
func (m *Manager) Validate(username, password string) bool {
	acct := m.accounts.Get(accountKey(username))
	if acct == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) == nil
}

// Register creates and persists a new account with a hashed password.
func (m *Manager) Register(username, password string) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}
	if m.Exists(username) {
		return fmt.Errorf("account %q already exists", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	acct := &Account{
		Name:         username,
		PasswordHash: string(hash),
	}
	if err := m.accounts.Save(accountKey(username), acct); err != nil {
		return fmt.Errorf("saving account: %w", err)
	}
	return nil
}

func accountKey(username string) string {
	return strings.ToLower(username)
}
