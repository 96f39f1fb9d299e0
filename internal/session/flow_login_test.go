package session

import (
	"strings"
	"testing"

	"github.com/dungeonmerc/go-merc/internal/auth"
	"github.com/dungeonmerc/go-merc/internal/game"
	"github.com/pixil98/go-testutil"
)

// accountStore is an in-memory Storer for login tests.
type accountStore struct {
	records map[string]*auth.Account
}

func newAccountStore() *accountStore {
	return &accountStore{records: map[string]*auth.Account{}}
}

func (s *accountStore) Save(id string, a *auth.Account) error {
	s.records[id] = a
	return nil
}

func (s *accountStore) Get(id string) *auth.Account {
	return s.records[id]
}

func (s *accountStore) GetAll() map[string]*auth.Account {
	return s.records
}

func TestLoginFlowNewAccount(t *testing.T) {
	accounts := auth.NewManager(newAccountStore())
	flow := &loginFlow{accounts: accounts}

	conn := newScriptedConn(
		"Alice",  // name
		"y",      // confirm new account
		"secret", // password
		"secret", // retype
		"1",      // class: Scout
	)

	name, class, err := flow.Run(conn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "name", name, "Alice")
	testutil.AssertEqual(t, "class", class, game.ClassScout)
	testutil.AssertEqual(t, "account created", accounts.Exists("Alice"), true)
	testutil.AssertEqual(t, "password works", accounts.Validate("Alice", "secret"), true)

	if !strings.Contains(conn.output(), "Welcome to Dungeon Merc!") {
		t.Error("expected the welcome banner")
	}
}

func TestLoginFlowExistingAccount(t *testing.T) {
	accounts := auth.NewManager(newAccountStore())
	if err := accounts.Register("Alice", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flow := &loginFlow{accounts: accounts}

	conn := newScriptedConn(
		"Alice",
		"secret",
		"2", // class: Enforcer
	)

	name, class, err := flow.Run(conn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "name", name, "Alice")
	testutil.AssertEqual(t, "class", class, game.ClassEnforcer)
}

func TestLoginFlowWrongPassword(t *testing.T) {
	accounts := auth.NewManager(newAccountStore())
	if err := accounts.Register("Alice", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flow := &loginFlow{accounts: accounts}

	conn := newScriptedConn("Alice", "wrong", "wrong", "wrong")

	_, _, err := flow.Run(conn)
	if err == nil {
		t.Fatal("expected the login to fail after exhausting password tries")
	}
	testutil.AssertEqual(t, "rejections", strings.Count(conn.output(), "Wrong password."), 3)
}

func TestLoginFlowBackOutOfNewAccount(t *testing.T) {
	accounts := auth.NewManager(newAccountStore())
	flow := &loginFlow{accounts: accounts}

	conn := newScriptedConn(
		"Alicce", // typo
		"n",      // not right, back to the name prompt
		"Alice",
		"y",
		"secret",
		"secret",
		"4", // class: Ghost
	)

	name, class, err := flow.Run(conn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "name", name, "Alice")
	testutil.AssertEqual(t, "class", class, game.ClassGhost)
	testutil.AssertEqual(t, "typo not registered", accounts.Exists("Alicce"), false)
}

func TestLoginFlowPasswordMismatch(t *testing.T) {
	accounts := auth.NewManager(newAccountStore())
	flow := &loginFlow{accounts: accounts}

	conn := newScriptedConn(
		"Alice",
		"y",
		"secret",
		"terces", // mismatch, start over
		"secret",
		"secret",
		"3", // class: Tech
	)

	name, class, err := flow.Run(conn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "name", name, "Alice")
	testutil.AssertEqual(t, "class", class, game.ClassTech)
	if !strings.Contains(conn.output(), "Passwords don't match... start over.") {
		t.Error("expected the mismatch notice")
	}
	testutil.AssertEqual(t, "password works", accounts.Validate("Alice", "secret"), true)
}

func TestLoginFlowRejectsBadNames(t *testing.T) {
	accounts := auth.NewManager(newAccountStore())
	flow := &loginFlow{accounts: accounts}

	conn := newScriptedConn(
		"x99", // digits rejected
		"Alice",
		"y",
		"secret",
		"secret",
		"1",
	)

	name, _, err := flow.Run(conn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "name", name, "Alice")
	if !strings.Contains(conn.output(), "Invalid name, please try another.") {
		t.Error("expected the invalid name notice")
	}
}
