package game

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestNewStore_Defaults(t *testing.T) {
	p := NewStore().Player()

	testutil.AssertEqual(t, "position", p.Position, Position{X: 180, Y: 100})
	testutil.AssertEqual(t, "name", p.Name, "")
	testutil.AssertEqual(t, "level", p.Level, 0)
	testutil.AssertEqual(t, "class", p.Class, "")
	testutil.AssertEqual(t, "hp", p.HP, 50)
	testutil.AssertEqual(t, "maxHp", p.MaxHP, 100)
	testutil.AssertEqual(t, "mp", p.MP, 5)
	testutil.AssertEqual(t, "maxMp", p.MaxMP, 5)
	testutil.AssertEqual(t, "strength", p.Strength, 80)
	testutil.AssertEqual(t, "dexterity", p.Dexterity, 5)
	testutil.AssertEqual(t, "intelligence", p.Intelligence, 3)
	testutil.AssertEqual(t, "avatar", p.Avatar, "app.media.knight")
	testutil.AssertEqual(t, "direction", p.Direction, "")
	testutil.AssertEqual(t, "collisionRadius", p.CollisionRadius, 25.0)
	testutil.AssertEqual(t, "type", p.Type, "player")
	testutil.AssertEqual(t, "exp", p.Exp, 30)
	testutil.AssertEqual(t, "nextLevelExp", p.NextLevelExp, 100)
	testutil.AssertEqual(t, "inventory length", len(p.Inventory), 0)
	testutil.AssertEqual(t, "quest length", len(p.Quest), 0)
	testutil.AssertEqual(t, "activeQuests length", len(p.ActiveQuests), 0)
	testutil.AssertEqual(t, "live", p.Live, true)
	testutil.AssertEqual(t, "monstersKilled", p.MonstersKilled, 0)
	testutil.AssertEqual(t, "goldCollected", p.GoldCollected, 0)

	if p.Inventory == nil || p.Quest == nil || p.ActiveQuests == nil {
		t.Error("expected lists to be empty, not nil")
	}
}

func TestNewStore_IndependentInstances(t *testing.T) {
	a := NewStore()
	b := NewStore()

	if err := a.Update(Patch{HP: Ptr(1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "a hp", a.Player().HP, 1)
	testutil.AssertEqual(t, "b hp", b.Player().HP, 50)
}

func TestNewStore_WithPlayer(t *testing.T) {
	p := &Player{Name: "Ayla", HP: 3}
	s := NewStore(WithPlayer(p))

	if s.Player() != p {
		t.Error("expected store to hold the seeded player")
	}
}

func TestStore_Update_SingleField(t *testing.T) {
	s := NewStore()
	want := *NewPlayer()
	want.HP = 75

	if err := s.Update(Patch{HP: Ptr(75)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertPlayersEqual(t, s.Player(), &want)
}

func TestStore_Update_ReplacesPositionWholesale(t *testing.T) {
	s := NewStore()

	if err := s.Update(Patch{Position: &Position{X: 5, Y: 5}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "position", s.Player().Position, Position{X: 5, Y: 5})
}

func TestStore_Update_ReplacesInventoryWholesale(t *testing.T) {
	s := NewStore()
	s.Player().AddItem(Item{Name: "Herb", Quantity: 2})

	if err := s.Update(Patch{Inventory: &[]Item{{Name: "Key", Type: ItemTypeKeyItem, Quantity: 1}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	inv := s.Player().Inventory
	testutil.AssertEqual(t, "inventory length", len(inv), 1)
	testutil.AssertEqual(t, "inventory[0]", inv[0].Name, "Key")
}

func TestStore_Update_InventoryNotShared(t *testing.T) {
	inv := []Item{{Name: "Herb", Type: ItemTypeKeyItem, Quantity: 1}}
	pt := Patch{Inventory: &inv}

	a := NewStore()
	b := NewStore()
	for _, s := range []*Store{a, b} {
		if err := s.Update(pt); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	a.Player().Inventory[0].Quantity = 9

	testutil.AssertEqual(t, "b herbs", b.Player().Inventory[0].Quantity, 1)
	testutil.AssertEqual(t, "patch herbs", inv[0].Quantity, 1)
}

func TestStore_Update_EmptyPatch(t *testing.T) {
	s := NewStore()

	if err := s.Update(Patch{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertPlayersEqual(t, s.Player(), NewPlayer())
}

func TestStore_Update_Cumulative(t *testing.T) {
	s := NewStore()

	if err := s.Update(Patch{HP: Ptr(10)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Update(Patch{MP: Ptr(2)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "hp", s.Player().HP, 10)
	testutil.AssertEqual(t, "mp", s.Player().MP, 2)
}

func TestStore_Update_UnknownFieldIsWritten(t *testing.T) {
	s := NewStore()

	if err := s.Update(Patch{Extra: map[string]any{"foo": 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var foo int
	found, err := s.Player().Ext.Get("foo", &foo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "found", found, true)
	testutil.AssertEqual(t, "foo", foo, 1)
}

func TestStore_Update_ExtraNamingTypedField(t *testing.T) {
	s := NewStore()

	err := s.Update(Patch{Extra: map[string]any{
		"hp":       75,
		"position": map[string]float64{"x": 3, "y": 4},
		"foo":      "bar",
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := s.Player()
	testutil.AssertEqual(t, "hp", p.HP, 75)
	testutil.AssertEqual(t, "position", p.Position, Position{X: 3, Y: 4})
	testutil.AssertEqual(t, "ext keys", p.Ext.Keys(), []string{"foo"})
}

func TestStore_Update_TypedFieldBeatsExtra(t *testing.T) {
	s := NewStore()

	if err := s.Update(Patch{HP: Ptr(10), Extra: map[string]any{"hp": 75, "mp": 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "hp", s.Player().HP, 10)
	testutil.AssertEqual(t, "mp", s.Player().MP, 1)
	testutil.AssertEqual(t, "ext length", len(s.Player().Ext), 0)
}

func TestStore_Update_ExtraTypedFieldErrors(t *testing.T) {
	tests := map[string]struct {
		extra  map[string]any
		expErr string
	}{
		"wrong type": {
			extra:  map[string]any{"hp": "lots"},
			expErr: `extra "hp"`,
		},
		"fixed type tag": {
			extra:  map[string]any{"type": "monster"},
			expErr: "the player type is fixed",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewStore()

			err := s.Update(Patch{MP: Ptr(1), Extra: tt.extra})
			testutil.AssertErrorContains(t, err, tt.expErr)

			p := s.Player()
			testutil.AssertEqual(t, "mp", p.MP, 1)
			testutil.AssertEqual(t, "hp", p.HP, 50)
			testutil.AssertEqual(t, "type", p.Type, PlayerType)
			testutil.AssertEqual(t, "ext length", len(p.Ext), 0)
		})
	}
}

func TestStore_Update_NoRangeChecks(t *testing.T) {
	s := NewStore()

	err := s.Update(Patch{HP: Ptr(500), GoldCollected: Ptr(-3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "hp", s.Player().HP, 500)
	testutil.AssertEqual(t, "goldCollected", s.Player().GoldCollected, -3)
}

func TestStore_Update_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewStore(WithLogger(logger))

	if err := s.Update(Patch{HP: Ptr(1), MP: Ptr(1)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "player updated") || !strings.Contains(out, "hp") {
		t.Errorf("expected update to be logged, got %q", out)
	}

	buf.Reset()
	if err := s.Update(Patch{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "log after empty patch", buf.String(), "")
}

func assertPlayersEqual(t *testing.T, got, want *Player) {
	t.Helper()

	testutil.AssertEqual(t, "position", got.Position, want.Position)
	testutil.AssertEqual(t, "name", got.Name, want.Name)
	testutil.AssertEqual(t, "level", got.Level, want.Level)
	testutil.AssertEqual(t, "class", got.Class, want.Class)
	testutil.AssertEqual(t, "avatar", got.Avatar, want.Avatar)
	testutil.AssertEqual(t, "direction", got.Direction, want.Direction)
	testutil.AssertEqual(t, "type", got.Type, want.Type)
	testutil.AssertEqual(t, "hp", got.HP, want.HP)
	testutil.AssertEqual(t, "maxHp", got.MaxHP, want.MaxHP)
	testutil.AssertEqual(t, "mp", got.MP, want.MP)
	testutil.AssertEqual(t, "maxMp", got.MaxMP, want.MaxMP)
	testutil.AssertEqual(t, "strength", got.Strength, want.Strength)
	testutil.AssertEqual(t, "dexterity", got.Dexterity, want.Dexterity)
	testutil.AssertEqual(t, "intelligence", got.Intelligence, want.Intelligence)
	testutil.AssertEqual(t, "exp", got.Exp, want.Exp)
	testutil.AssertEqual(t, "nextLevelExp", got.NextLevelExp, want.NextLevelExp)
	testutil.AssertEqual(t, "collisionRadius", got.CollisionRadius, want.CollisionRadius)
	testutil.AssertEqual(t, "inventory length", len(got.Inventory), len(want.Inventory))
	testutil.AssertEqual(t, "live", got.Live, want.Live)
	testutil.AssertEqual(t, "monstersKilled", got.MonstersKilled, want.MonstersKilled)
	testutil.AssertEqual(t, "goldCollected", got.GoldCollected, want.GoldCollected)
	testutil.AssertEqual(t, "quest length", len(got.Quest), len(want.Quest))
	testutil.AssertEqual(t, "activeQuests length", len(got.ActiveQuests), len(want.ActiveQuests))
	testutil.AssertEqual(t, "ext length", len(got.Ext), len(want.Ext))
}
