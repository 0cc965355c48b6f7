package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// ItemType defines the category of an item.
type ItemType int

const (
	ItemTypeConsumable ItemType = iota
	ItemTypeEquipment
	ItemTypeKeyItem
)

func (t ItemType) String() string {
	switch t {
	case ItemTypeConsumable:
		return "consumable"
	case ItemTypeEquipment:
		return "equipment"
	case ItemTypeKeyItem:
		return "keyItem"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

func (t ItemType) MarshalText() ([]byte, error) {
	switch t {
	case ItemTypeConsumable, ItemTypeEquipment, ItemTypeKeyItem:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownItemType, int(t))
	}
}

func (t *ItemType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "consumable":
		*t = ItemTypeConsumable
	case "equipment":
		*t = ItemTypeEquipment
	case "keyItem":
		*t = ItemTypeKeyItem
	default:
		return fmt.Errorf("%w: %s", ErrUnknownItemType, text)
	}
	return nil
}

// Item is a collectible or usable object carried by the player.
// Items with the same name are indistinguishable and stack in an inventory.
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        ItemType `json:"type"`
	Effect      Effect   `json:"effect"`
	Icon        string   `json:"icon"`
	Quantity    int      `json:"quantity"`
}

// Validate checks the item's static definition. Quantity is not checked.
func (it *Item) Validate() error {
	el := errors.NewErrorList()

	if it.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	switch it.Type {
	case ItemTypeConsumable, ItemTypeEquipment, ItemTypeKeyItem:
	default:
		el.Add(fmt.Errorf("%w: %d", ErrUnknownItemType, int(it.Type)))
	}
	if err := it.Effect.Validate(); err != nil {
		el.Add(fmt.Errorf("item %q effect: %w", it.Name, err))
	}

	return el.Err()
}

// stackSize is the quantity an item contributes when added to an inventory.
func (it Item) stackSize() int {
	if it.Quantity == 0 {
		return 1
	}
	return it.Quantity
}
