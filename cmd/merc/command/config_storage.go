package command

import (
	"fmt"
	"os"

	"github.com/dungeonmerc/go-merc/internal/auth"
	"github.com/dungeonmerc/go-merc/internal/game"
	"github.com/dungeonmerc/go-merc/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	Accounts AssetConfig[*auth.Account]  `json:"accounts"`
	Rooms    AssetConfig[*game.RoomSpec] `json:"rooms"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Accounts.Validate("accounts"))
	// Rooms are optional. Without a room directory the built-in starting
	// area is used.
	if c.Rooms.Path != "" {
		el.Add(c.Rooms.Validate("rooms"))
	}
	return el.Err()
}

func (c *StorageConfig) BuildAccountManager() (*auth.Manager, error) {
	store, err := c.Accounts.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating account store: %w", err)
	}
	return auth.NewManager(store), nil
}

func (c *StorageConfig) BuildWorld(startingRoom int) (*game.World, error) {
	if c.Rooms.Path == "" {
		return game.NewStartingWorld(), nil
	}

	store, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}

	world, err := game.BuildWorld(store.GetAll(), startingRoom)
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}
	return world, nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
