package game

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/pixil98/go-errors"
)

// Patch is a partial update to a Player. Every non-nil field replaces the
// matching player field wholesale; nil fields leave the player untouched.
// Nested values such as Position or the inventory are never merged.
type Patch struct {
	Position  *Position `json:"position,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Level     *int      `json:"level,omitempty"`
	Class     *string   `json:"class,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Direction *string   `json:"direction,omitempty"`

	HP    *int `json:"hp,omitempty"`
	MaxHP *int `json:"maxHp,omitempty"`
	MP    *int `json:"mp,omitempty"`
	MaxMP *int `json:"maxMp,omitempty"`

	Strength     *int `json:"strength,omitempty"`
	Dexterity    *int `json:"dexterity,omitempty"`
	Intelligence *int `json:"intelligence,omitempty"`

	Exp          *int `json:"exp,omitempty"`
	NextLevelExp *int `json:"nextLevelExp,omitempty"`

	CollisionRadius *float64 `json:"collisionRadius,omitempty"`

	Inventory *[]Item `json:"inventory,omitempty"`

	Live           *bool `json:"live,omitempty"`
	MonstersKilled *int  `json:"monstersKilled,omitempty"`
	GoldCollected  *int  `json:"goldCollected,omitempty"`

	Quest        *[]Quest `json:"quest,omitempty"`
	ActiveQuests *[]Quest `json:"activeQuests,omitempty"`

	// Extra carries fields the player record has no typed slot for.
	// They are written into Player.Ext. An entry whose key names a typed
	// field (e.g. "hp") is decoded into that field instead, unless the
	// patch sets the field itself.
	Extra map[string]any `json:"extra,omitempty"`
}

// patchFields holds the JSON names of the typed Patch fields.
var patchFields = func() map[string]bool {
	names := map[string]bool{}
	t := reflect.TypeFor[Patch]()
	for i := range t.NumField() {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "extra" {
			names[name] = true
		}
	}
	return names
}()

// Ptr returns a pointer to v, for building patches.
func Ptr[T any](v T) *T {
	return &v
}

// setField copies *src into *dst when src is present and records name.
func setField[T any](dst *T, src *T, name string, fields *[]string) {
	if src == nil {
		return
	}
	*dst = *src
	*fields = append(*fields, name)
}

// setSlice is setField for slices. The player gets its own copy so patches
// reused across players never share a backing array.
func setSlice[E any](dst *[]E, src *[]E, name string, fields *[]string) {
	if src == nil {
		return
	}
	*dst = slices.Clone(*src)
	*fields = append(*fields, name)
}

// ApplyTo writes the present fields onto p and returns their names in
// declaration order, followed by the extension keys written. Typed fields are
// always written; an error is returned only for Extra entries that cannot be
// encoded, cannot be decoded into the typed field they name, or name the
// fixed "type" field. The remaining entries are still written.
func (pt Patch) ApplyTo(p *Player) ([]string, error) {
	el := errors.NewErrorList()

	routed, rest, err := pt.routeExtra()
	el.Add(err)
	pt = pt.fillFrom(routed)

	var fields []string
	setField(&p.Position, pt.Position, "position", &fields)
	setField(&p.Name, pt.Name, "name", &fields)
	setField(&p.Level, pt.Level, "level", &fields)
	setField(&p.Class, pt.Class, "class", &fields)
	setField(&p.Avatar, pt.Avatar, "avatar", &fields)
	setField(&p.Direction, pt.Direction, "direction", &fields)
	setField(&p.HP, pt.HP, "hp", &fields)
	setField(&p.MaxHP, pt.MaxHP, "maxHp", &fields)
	setField(&p.MP, pt.MP, "mp", &fields)
	setField(&p.MaxMP, pt.MaxMP, "maxMp", &fields)
	setField(&p.Strength, pt.Strength, "strength", &fields)
	setField(&p.Dexterity, pt.Dexterity, "dexterity", &fields)
	setField(&p.Intelligence, pt.Intelligence, "intelligence", &fields)
	setField(&p.Exp, pt.Exp, "exp", &fields)
	setField(&p.NextLevelExp, pt.NextLevelExp, "nextLevelExp", &fields)
	setField(&p.CollisionRadius, pt.CollisionRadius, "collisionRadius", &fields)
	setSlice(&p.Inventory, pt.Inventory, "inventory", &fields)
	setField(&p.Live, pt.Live, "live", &fields)
	setField(&p.MonstersKilled, pt.MonstersKilled, "monstersKilled", &fields)
	setField(&p.GoldCollected, pt.GoldCollected, "goldCollected", &fields)
	setSlice(&p.Quest, pt.Quest, "quest", &fields)
	setSlice(&p.ActiveQuests, pt.ActiveQuests, "activeQuests", &fields)

	if len(rest) > 0 {
		el.Add(p.Ext.Merge(rest))
		for _, k := range slices.Sorted(maps.Keys(rest)) {
			if _, ok := p.Ext[k]; ok {
				fields = append(fields, k)
			}
		}
	}
	return fields, el.Err()
}

// routeExtra splits Extra into the entries naming a typed field, decoded into
// a Patch, and the rest.
func (pt Patch) routeExtra() (Patch, map[string]any, error) {
	var routed Patch
	rest := map[string]any{}
	el := errors.NewErrorList()

	for _, k := range slices.Sorted(maps.Keys(pt.Extra)) {
		v := pt.Extra[k]
		switch {
		case k == "type":
			el.Add(fmt.Errorf("extra %q: the player type is fixed", k))
		case patchFields[k]:
			b, err := json.Marshal(map[string]any{k: v})
			if err == nil {
				err = json.Unmarshal(b, &routed)
			}
			if err != nil {
				el.Add(fmt.Errorf("extra %q: %w", k, err))
			}
		default:
			rest[k] = v
		}
	}

	return routed, rest, el.Err()
}

// fillFrom returns pt with every nil typed field taken from other.
func (pt Patch) fillFrom(other Patch) Patch {
	dst := reflect.ValueOf(&pt).Elem()
	src := reflect.ValueOf(other)
	for i := range dst.NumField() {
		if f := dst.Field(i); f.Kind() == reflect.Pointer && f.IsNil() {
			f.Set(src.Field(i))
		}
	}
	return pt
}

// IsEmpty reports whether the patch would leave a player unchanged.
func (pt Patch) IsEmpty() bool {
	typed := pt
	typed.Extra = nil
	fields, _ := typed.ApplyTo(&Player{})
	return len(fields) == 0 && len(pt.Extra) == 0
}

// Validate checks the patch against the ranges a well-formed player keeps.
// Applying a patch never calls this; callers that want the checks opt in.
func (pt Patch) Validate() error {
	el := errors.NewErrorList()

	nonNegative := func(name string, v *int) {
		if v != nil && *v < 0 {
			el.Add(fmt.Errorf("%s must not be negative", name))
		}
	}
	nonNegative("hp", pt.HP)
	nonNegative("maxHp", pt.MaxHP)
	nonNegative("mp", pt.MP)
	nonNegative("maxMp", pt.MaxMP)
	nonNegative("level", pt.Level)
	nonNegative("exp", pt.Exp)
	nonNegative("monstersKilled", pt.MonstersKilled)
	nonNegative("goldCollected", pt.GoldCollected)

	if pt.HP != nil && pt.MaxHP != nil && *pt.HP > *pt.MaxHP {
		el.Add(fmt.Errorf("hp %d exceeds maxHp %d", *pt.HP, *pt.MaxHP))
	}
	if pt.MP != nil && pt.MaxMP != nil && *pt.MP > *pt.MaxMP {
		el.Add(fmt.Errorf("mp %d exceeds maxMp %d", *pt.MP, *pt.MaxMP))
	}
	if pt.CollisionRadius != nil && *pt.CollisionRadius < 0 {
		el.Add(fmt.Errorf("collisionRadius must not be negative"))
	}

	if pt.Inventory != nil {
		for i := range *pt.Inventory {
			it := &(*pt.Inventory)[i]
			el.Add(it.Validate())
			if it.Quantity < 0 {
				el.Add(fmt.Errorf("item %q quantity must not be negative", it.Name))
			}
		}
	}

	return el.Err()
}
