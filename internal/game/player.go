package game

import (
	"fmt"
	"slices"
)

// PlayerType is the type tag carried by every player record.
const PlayerType = "player"

// Starting values for a new player.
const (
	DefaultAvatar          = "app.media.knight"
	DefaultCollisionRadius = 25
)

// Player is the full state of the controllable character.
type Player struct {
	Position  Position `json:"position"`
	Name      string   `json:"name"`
	Level     int      `json:"level"`
	Class     string   `json:"class"`
	Avatar    string   `json:"avatar"`
	Direction string   `json:"direction,omitempty"` // empty when the player has no facing
	Type      string   `json:"type"`

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`
	MP    int `json:"mp"`
	MaxMP int `json:"maxMp"`

	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Intelligence int `json:"intelligence"`

	Exp          int `json:"exp"`
	NextLevelExp int `json:"nextLevelExp"`

	CollisionRadius float64 `json:"collisionRadius"`

	Inventory []Item `json:"inventory"`

	Live           bool `json:"live"`
	MonstersKilled int  `json:"monstersKilled"`
	GoldCollected  int  `json:"goldCollected"`

	// Quest holds quests offered to the player; ActiveQuests those in progress.
	Quest        []Quest `json:"quest"`
	ActiveQuests []Quest `json:"activeQuests"`

	Ext Extras `json:"ext,omitempty"`
}

// NewPlayer returns a player populated with the starting values.
func NewPlayer() *Player {
	return &Player{
		Position:        Position{X: 180, Y: 100},
		Avatar:          DefaultAvatar,
		Type:            PlayerType,
		HP:              50,
		MaxHP:           100,
		MP:              5,
		MaxMP:           5,
		Strength:        80,
		Dexterity:       5,
		Intelligence:    3,
		Exp:             30,
		NextLevelExp:    100,
		CollisionRadius: DefaultCollisionRadius,
		Inventory:       []Item{},
		Live:            true,
		Quest:           []Quest{},
		ActiveQuests:    []Quest{},
	}
}

// stat returns a pointer to the attribute a statBoost effect may modify.
func (p *Player) stat(name string) (*int, error) {
	switch name {
	case StatStrength:
		return &p.Strength, nil
	case StatDexterity:
		return &p.Dexterity, nil
	case StatIntelligence:
		return &p.Intelligence, nil
	case StatMaxHP:
		return &p.MaxHP, nil
	case StatMaxMP:
		return &p.MaxMP, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStat, name)
	}
}

// FindItem returns the inventory index of the first item with the given name.
func (p *Player) FindItem(name string) (int, bool) {
	i := slices.IndexFunc(p.Inventory, func(it Item) bool { return it.Name == name })
	return i, i >= 0
}

// AddItem stacks it onto an existing entry with the same name, or appends it.
// A zero quantity counts as a single item.
func (p *Player) AddItem(it Item) {
	if i, ok := p.FindItem(it.Name); ok {
		p.Inventory[i].Quantity += it.stackSize()
		return
	}
	it.Quantity = it.stackSize()
	p.Inventory = append(p.Inventory, it)
}

// RemoveItem takes n of the named item out of the inventory, dropping the
// entry once nothing is left.
func (p *Player) RemoveItem(name string, n int) error {
	i, ok := p.FindItem(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	if p.Inventory[i].Quantity < n {
		return fmt.Errorf("%w: have %d %q, need %d", ErrInsufficientQuantity, p.Inventory[i].Quantity, name, n)
	}

	p.Inventory[i].Quantity -= n
	if p.Inventory[i].Quantity <= 0 {
		p.Inventory = slices.Delete(p.Inventory, i, i+1)
	}
	return nil
}

// UseItem applies the named item's effect to the player. A consumable is used
// up one at a time; equipment and key items stay in the inventory.
func (p *Player) UseItem(name string) error {
	if !p.Live {
		return ErrPlayerDead
	}

	i, ok := p.FindItem(name)
	if !ok || p.Inventory[i].Quantity <= 0 {
		return fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	it := p.Inventory[i]

	if err := it.Effect.Apply(p); err != nil {
		return fmt.Errorf("using %q: %w", name, err)
	}

	if it.Type == ItemTypeConsumable {
		return p.RemoveItem(name, 1)
	}
	return nil
}

// AcceptQuest moves the named quest from the offered list to the active list.
func (p *Player) AcceptQuest(name string) error {
	i := slices.IndexFunc(p.Quest, func(q Quest) bool { return q.Name == name })
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrQuestNotFound, name)
	}

	q := p.Quest[i]
	p.Quest = slices.Delete(p.Quest, i, i+1)
	p.ActiveQuests = append(p.ActiveQuests, q)
	return nil
}

// CompleteQuests marks every satisfied active quest as completed, hands out
// its rewards and removes it from the active list. The newly completed quests
// are returned. An active quest already flagged as completed is dropped from
// the list without paying out its rewards again.
func (p *Player) CompleteQuests() []Quest {
	var done []Quest
	remaining := p.ActiveQuests[:0]
	for _, q := range p.ActiveQuests {
		if q.IsCompleted {
			continue
		}
		if !q.Satisfied(p) {
			remaining = append(remaining, q)
			continue
		}

		q.IsCompleted = true
		for _, r := range q.Reward {
			p.AddItem(r)
		}
		done = append(done, q)
	}
	clear(p.ActiveQuests[len(remaining):])
	p.ActiveQuests = remaining

	return done
}
