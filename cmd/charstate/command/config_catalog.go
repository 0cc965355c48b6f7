package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-charstate/internal/catalog"
	"github.com/pixil98/go-errors"
)

type CatalogConfig struct {
	Path      string `json:"path"`
	Items     string `json:"items"`
	Quests    string `json:"quests"`
	WrapWidth int    `json:"wrap_width"`
}

func (c *CatalogConfig) validate() error {
	el := errors.NewErrorList()

	if c.Path == "" {
		el.Add(fmt.Errorf("catalog: path is required"))
	} else if _, err := os.Stat(c.Path); err != nil {
		el.Add(fmt.Errorf("catalog: invalid path %q: %w", c.Path, err))
	}
	if c.WrapWidth < 0 {
		el.Add(fmt.Errorf("catalog: wrap_width must not be negative"))
	}

	return el.Err()
}

func (c *CatalogConfig) itemsDir() string {
	if c.Items == "" {
		return "items"
	}
	return c.Items
}

func (c *CatalogConfig) questsDir() string {
	if c.Quests == "" {
		return "quests"
	}
	return c.Quests
}

func (c *CatalogConfig) BuildCatalog() (*catalog.Catalog, error) {
	var opts []catalog.CatalogOpt
	if c.WrapWidth > 0 {
		opts = append(opts, catalog.WithWrapWidth(c.WrapWidth))
	}

	return catalog.Load(os.DirFS(c.Path), c.itemsDir(), c.questsDir(), opts...)
}
