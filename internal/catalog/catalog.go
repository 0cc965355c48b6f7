package catalog

import (
	"fmt"
	"io/fs"

	"github.com/pixil98/go-charstate/internal/display"
	"github.com/pixil98/go-charstate/internal/game"
	"github.com/pixil98/go-charstate/internal/storage"
	"github.com/pixil98/go-errors"
)

// Catalog turns item and quest definitions into game values.
type Catalog struct {
	items  *storage.DirStore[*ItemDef]
	quests *storage.DirStore[*QuestDef]

	wrapWidth int
}

type CatalogOpt func(*Catalog)

// WithWrapWidth sets the column width item descriptions are wrapped to.
func WithWrapWidth(w int) CatalogOpt {
	return func(c *Catalog) {
		c.wrapWidth = w
	}
}

// Load reads item definitions from itemsDir and quest definitions from
// questsDir, both relative to fsys, and resolves the quests' item references.
func Load(fsys fs.FS, itemsDir, questsDir string, opts ...CatalogOpt) (*Catalog, error) {
	items, err := storage.LoadDirStore[*ItemDef](fsys, itemsDir)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	quests, err := storage.LoadDirStore[*QuestDef](fsys, questsDir)
	if err != nil {
		return nil, fmt.Errorf("loading quests: %w", err)
	}

	return New(items, quests, opts...)
}

// New builds a catalog from loaded stores and resolves quest references.
func New(items *storage.DirStore[*ItemDef], quests *storage.DirStore[*QuestDef], opts ...CatalogOpt) (*Catalog, error) {
	c := &Catalog{
		items:     items,
		quests:    quests,
		wrapWidth: display.DefaultWidth,
	}

	for _, opt := range opts {
		opt(c)
	}

	el := errors.NewErrorList()
	for _, id := range quests.Ids() {
		q, _ := quests.Get(id)
		if err := q.Resolve(items); err != nil {
			el.Add(fmt.Errorf("quest %s: %w", id, err))
		}
	}
	if err := el.Err(); err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return c, nil
}

func (c *Catalog) ItemIds() []storage.Identifier {
	return c.items.Ids()
}

func (c *Catalog) QuestIds() []storage.Identifier {
	return c.quests.Ids()
}

// NewItem creates a stack of qty items from the definition with the given id.
func (c *Catalog) NewItem(id storage.Identifier, qty int) (game.Item, error) {
	def, ok := c.items.Get(id)
	if !ok {
		return game.Item{}, fmt.Errorf("item %q not found", id)
	}
	return c.buildItem(def, qty)
}

func (c *Catalog) buildItem(def *ItemDef, qty int) (game.Item, error) {
	desc, err := expandDescription(def.Description, descriptionData{
		Effect:   def.Effect,
		Name:     def.Name,
		Quantity: qty,
	})
	if err != nil {
		return game.Item{}, fmt.Errorf("item %q description: %w", def.Name, err)
	}

	return game.Item{
		Name:        def.Name,
		Description: display.Wrap(desc, c.wrapWidth),
		Type:        def.Type,
		Effect:      def.Effect,
		Icon:        def.Icon,
		Quantity:    qty,
	}, nil
}

// NewQuest creates a fresh, uncompleted quest from the definition with the given id.
func (c *Catalog) NewQuest(id storage.Identifier) (game.Quest, error) {
	def, ok := c.quests.Get(id)
	if !ok {
		return game.Quest{}, fmt.Errorf("quest %q not found", id)
	}

	q := game.Quest{
		Name:        def.Name,
		Description: display.Wrap(def.Description, c.wrapWidth),
		Type:        def.Type,
		Reward:      []game.Item{},
	}

	if def.TargetLocation != nil {
		loc := *def.TargetLocation
		q.TargetLocation = &loc
	}
	for _, ref := range def.TargetItems {
		q.TargetItems = append(q.TargetItems, ref.Get().Name)
	}
	for _, r := range def.Reward {
		it, err := c.buildItem(r.Item.Get(), r.Quantity)
		if err != nil {
			return game.Quest{}, fmt.Errorf("quest %q reward: %w", def.Name, err)
		}
		q.Reward = append(q.Reward, it)
	}

	return q, nil
}
