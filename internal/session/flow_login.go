package session

import (
	"fmt"
	"io"

	"github.com/dungeonmerc/go-merc/internal/auth"
	"github.com/dungeonmerc/go-merc/internal/game"
)

const maxPasswordTries = 3

// loginFlow walks a connection through authentication: username, password
// check for known accounts, account creation for new ones, then class
// selection. It owns the Authenticating half of the session state machine.
type loginFlow struct {
	accounts *auth.Manager
}

// Run prompts until the connection authenticates or fails out. It returns
// the account name and chosen class.
func (f *loginFlow) Run(rw io.ReadWriter) (string, game.Class, error) {
	rw.Write([]byte("Welcome to Dungeon Merc!\n"))

	for {
		username, err := Prompt(rw, "By what name do you wish to be known? ",
			WithValidator(func(str string) (bool, string) {
				if err := auth.ValidateUsername(str); err != nil {
					return false, "Invalid name, please try another.\n"
				}
				return true, ""
			}))
		if err != nil {
			return "", 0, err
		}

		if !f.accounts.Exists(username) {
			created, err := f.newAccount(rw, username)
			if err != nil {
				return "", 0, err
			}
			if !created {
				continue
			}
		} else {
			_, err = Prompt(rw, "Password: ", WithMaxTries(maxPasswordTries), WithValidator(
				func(str string) (bool, string) {
					if !f.accounts.Validate(username, str) {
						return false, "Wrong password.\n"
					}
					return true, ""
				},
			))
			if err != nil {
				return "", 0, fmt.Errorf("authenticating %q: %w", username, err)
			}
		}

		class, err := f.chooseClass(rw)
		if err != nil {
			return "", 0, err
		}

		return username, class, nil
	}
}

// newAccount registers a fresh account after confirming the name and taking
// a password twice. Returns false (no error) if the user backs out.
func (f *loginFlow) newAccount(rw io.ReadWriter, username string) (bool, error) {
	ok, err := PromptYN(rw, fmt.Sprintf("Did I get that right, %s (Y/N)? ", username))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	for {
		passOne, err := Prompt(rw, fmt.Sprintf("Give me a password for %s: ", username), WithValidator(
			func(str string) (bool, string) {
				if len(str) == 0 || str == username {
					return false, "Illegal Password.\n"
				}
				return true, ""
			},
		))
		if err != nil {
			return false, err
		}

		passTwo, err := Prompt(rw, "Please retype password: ")
		if err != nil {
			return false, err
		}

		if passOne != passTwo {
			rw.Write([]byte("Passwords don't match... start over.\n"))
			continue
		}

		if err := f.accounts.Register(username, passOne); err != nil {
			return false, fmt.Errorf("registering %q: %w", username, err)
		}
		return true, nil
	}
}

func (f *loginFlow) chooseClass(rw io.ReadWriter) (game.Class, error) {
	sel := NewSelector(game.Classes[:])
	return sel.Prompt(rw, "Choose your class:")
}
