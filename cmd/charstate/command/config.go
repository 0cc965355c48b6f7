package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Catalog CatalogConfig  `json:"catalog"`
	Start   StartConfig    `json:"start"`
	Players []PlayerConfig `json:"players"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Catalog.validate())
	el.Add(c.Start.validate())

	names := map[string]bool{}
	for i, p := range c.Players {
		if err := p.validate(); err != nil {
			el.Add(fmt.Errorf("player %d: %w", i, err))
		}
		if names[p.Name] {
			el.Add(fmt.Errorf("player %d: duplicate name %q", i, p.Name))
		}
		names[p.Name] = true
	}

	return el.Err()
}
