package command

import (
	"fmt"
	"math"

	"github.com/pixil98/go-charstate/internal/catalog"
	"github.com/pixil98/go-charstate/internal/game"
	"github.com/pixil98/go-charstate/internal/storage"
	"github.com/pixil98/go-errors"
)

// StartConfig overrides the values every new player starts with.
type StartConfig struct {
	Position *game.Position `json:"position,omitempty"`
	Avatar   string         `json:"avatar,omitempty"`
	Class    string         `json:"class,omitempty"`
}

func (c *StartConfig) validate() error {
	el := errors.NewErrorList()

	if c.Position != nil {
		for _, v := range []float64{c.Position.X, c.Position.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				el.Add(fmt.Errorf("start: position must be finite"))
				break
			}
		}
	}

	return el.Err()
}

// Patch returns the starting values as a patch for the registry.
func (c *StartConfig) Patch() game.Patch {
	var pt game.Patch
	if c.Position != nil {
		pt.Position = game.Ptr(*c.Position)
	}
	if c.Avatar != "" {
		pt.Avatar = game.Ptr(c.Avatar)
	}
	if c.Class != "" {
		pt.Class = game.Ptr(c.Class)
	}
	return pt
}

type ItemGrantConfig struct {
	Id       storage.Identifier `json:"id"`
	Quantity int                `json:"quantity"`
}

// PlayerConfig describes a player created when the application starts.
type PlayerConfig struct {
	Name   string               `json:"name"`
	Class  string               `json:"class,omitempty"`
	Items  []ItemGrantConfig    `json:"items,omitempty"`
	Quests []storage.Identifier `json:"quests,omitempty"`
}

func (c *PlayerConfig) validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	for i, it := range c.Items {
		if it.Id == "" {
			el.Add(fmt.Errorf("item %d: id is required", i))
		}
		if it.Quantity < 0 {
			el.Add(fmt.Errorf("item %d: quantity must not be negative", i))
		}
	}

	return el.Err()
}

// BuildPlayer registers the configured player and gives it its starting
// items and offered quests from cat.
func (c *PlayerConfig) BuildPlayer(reg *game.Registry, cat *catalog.Catalog) (string, error) {
	overrides := game.Patch{Name: game.Ptr(c.Name)}
	if c.Class != "" {
		overrides.Class = game.Ptr(c.Class)
	}

	inventory := []game.Item{}
	for _, g := range c.Items {
		it, err := cat.NewItem(g.Id, g.Quantity)
		if err != nil {
			return "", fmt.Errorf("player %q: %w", c.Name, err)
		}
		inventory = append(inventory, it)
	}
	overrides.Inventory = &inventory

	quests := []game.Quest{}
	for _, id := range c.Quests {
		q, err := cat.NewQuest(id)
		if err != nil {
			return "", fmt.Errorf("player %q: %w", c.Name, err)
		}
		quests = append(quests, q)
	}
	overrides.Quest = &quests

	id, _, err := reg.Create(overrides)
	if err != nil {
		return "", fmt.Errorf("player %q: %w", c.Name, err)
	}
	return id, nil
}
