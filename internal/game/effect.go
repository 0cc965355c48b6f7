package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// EffectKind selects what an Effect does when applied to a player.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectHeal
	EffectRestoreMana
	EffectDamage
	EffectStatBoost
	EffectGrantExp
	EffectGrantGold
	EffectAddItem
)

var effectKindNames = map[EffectKind]string{
	EffectNone:        "none",
	EffectHeal:        "heal",
	EffectRestoreMana: "restoreMana",
	EffectDamage:      "damage",
	EffectStatBoost:   "statBoost",
	EffectGrantExp:    "grantExp",
	EffectGrantGold:   "grantGold",
	EffectAddItem:     "addItem",
}

func (k EffectKind) String() string {
	if s, ok := effectKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("EffectKind(%d)", int(k))
}

func (k EffectKind) MarshalText() ([]byte, error) {
	s, ok := effectKindNames[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEffect, int(k))
	}
	return []byte(s), nil
}

func (k *EffectKind) UnmarshalText(text []byte) error {
	for kind, name := range effectKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownEffect, text)
}

// Stat names accepted by EffectStatBoost.
const (
	StatStrength     = "strength"
	StatDexterity    = "dexterity"
	StatIntelligence = "intelligence"
	StatMaxHP        = "maxHp"
	StatMaxMP        = "maxMp"
)

// Effect is the action an item performs on the player that uses it.
// Which fields matter depends on Kind:
//
//	heal, restoreMana, damage, grantExp, grantGold: Amount
//	statBoost: Stat and Amount
//	addItem:   Item
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Amount int        `json:"amount,omitempty"`
	Stat   string     `json:"stat,omitempty"`
	Item   *Item      `json:"item,omitempty"`
}

// Apply mutates p according to the effect. Heal and restoreMana never push a
// value past its maximum, nor pull an already higher value down to it.
func (e Effect) Apply(p *Player) error {
	switch e.Kind {
	case EffectNone:
	case EffectHeal:
		if p.HP < p.MaxHP {
			p.HP = min(p.HP+e.Amount, p.MaxHP)
		}
	case EffectRestoreMana:
		if p.MP < p.MaxMP {
			p.MP = min(p.MP+e.Amount, p.MaxMP)
		}
	case EffectDamage:
		p.HP = max(p.HP-e.Amount, 0)
		if p.HP == 0 {
			p.Live = false
		}
	case EffectStatBoost:
		stat, err := p.stat(e.Stat)
		if err != nil {
			return err
		}
		*stat += e.Amount
	case EffectGrantExp:
		p.Exp += e.Amount
	case EffectGrantGold:
		p.GoldCollected += e.Amount
	case EffectAddItem:
		if e.Item != nil {
			p.AddItem(*e.Item)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownEffect, int(e.Kind))
	}
	return nil
}

// Validate checks that the fields required by Kind are set.
func (e Effect) Validate() error {
	el := errors.NewErrorList()

	switch e.Kind {
	case EffectNone:
	case EffectHeal, EffectRestoreMana, EffectDamage, EffectGrantExp, EffectGrantGold:
		if e.Amount < 0 {
			el.Add(fmt.Errorf("%s amount must not be negative", e.Kind))
		}
	case EffectStatBoost:
		if _, err := (&Player{}).stat(e.Stat); err != nil {
			el.Add(err)
		}
	case EffectAddItem:
		if e.Item == nil {
			el.Add(fmt.Errorf("addItem effect requires an item"))
		} else {
			el.Add(e.Item.Validate())
		}
	default:
		el.Add(fmt.Errorf("%w: %d", ErrUnknownEffect, int(e.Kind)))
	}

	return el.Err()
}
