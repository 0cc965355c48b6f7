package catalog

import (
	"fmt"

	"github.com/pixil98/go-charstate/internal/game"
	"github.com/pixil98/go-charstate/internal/storage"
	"github.com/pixil98/go-errors"
)

// ItemDef defines a kind of item loaded from asset files.
// Item ids follow the convention <category>-<name> (e.g., "potion-red").
type ItemDef struct {
	Name string `json:"name"`

	// Description is a template expanded against the item's effect and
	// quantity (e.g., "Restores {{ .Amount }} HP.").
	Description string `json:"description"`

	Type   game.ItemType `json:"type"`
	Effect game.Effect   `json:"effect"`
	Icon   string        `json:"icon"`
}

// Validate satisfies storage.ValidatingSpec
func (d *ItemDef) Validate() error {
	el := errors.NewErrorList()
	if d.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if d.Icon == "" {
		el.Add(fmt.Errorf("item icon is required"))
	}
	if _, err := parseDescription(d.Description); err != nil {
		el.Add(fmt.Errorf("item description: %w", err))
	}
	el.Add(d.Effect.Validate())
	return el.Err()
}

// RewardDef is a stack of items granted when a quest completes.
type RewardDef struct {
	Item     storage.Ref[*ItemDef] `json:"item"`
	Quantity int                   `json:"quantity"`
}

// QuestDef defines a quest loaded from asset files.
type QuestDef struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        game.QuestType `json:"type"`

	TargetLocation *game.Position          `json:"target_location,omitempty"`
	TargetItems    []storage.Ref[*ItemDef] `json:"target_items,omitempty"`

	Reward []RewardDef `json:"reward,omitempty"`
}

// Validate satisfies storage.ValidatingSpec
func (d *QuestDef) Validate() error {
	el := errors.NewErrorList()
	if d.Name == "" {
		el.Add(fmt.Errorf("quest name is required"))
	}

	switch d.Type {
	case game.QuestTypeTravel:
		if d.TargetLocation == nil {
			el.Add(fmt.Errorf("travel quest requires a target location"))
		}
	case game.QuestTypeCollection:
		if len(d.TargetItems) == 0 {
			el.Add(fmt.Errorf("collection quest requires target items"))
		}
	}

	for _, ref := range d.TargetItems {
		el.Add(ref.Validate())
	}
	for _, r := range d.Reward {
		el.Add(r.Item.Validate())
		if r.Quantity < 0 {
			el.Add(fmt.Errorf("reward %q quantity must not be negative", r.Item.Id()))
		}
	}
	return el.Err()
}

// Resolve resolves the quest's item references against items.
func (d *QuestDef) Resolve(items storage.Lookup[*ItemDef]) error {
	el := errors.NewErrorList()
	for i := range d.TargetItems {
		el.Add(d.TargetItems[i].Resolve(items))
	}
	for i := range d.Reward {
		el.Add(d.Reward[i].Item.Resolve(items))
	}
	return el.Err()
}
