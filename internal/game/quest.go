package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// QuestType defines how a quest is completed.
type QuestType int

const (
	QuestTypeTravel QuestType = iota
	QuestTypeCollection
)

func (t QuestType) String() string {
	switch t {
	case QuestTypeTravel:
		return "travel"
	case QuestTypeCollection:
		return "collection"
	default:
		return fmt.Sprintf("QuestType(%d)", int(t))
	}
}

func (t QuestType) MarshalText() ([]byte, error) {
	switch t {
	case QuestTypeTravel, QuestTypeCollection:
		return []byte(t.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownQuestType, int(t))
	}
}

func (t *QuestType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "travel":
		*t = QuestTypeTravel
	case "collection":
		*t = QuestTypeCollection
	default:
		return fmt.Errorf("%w: %s", ErrUnknownQuestType, text)
	}
	return nil
}

// Quest is a goal the player can take on.
type Quest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        QuestType `json:"type"`

	// TargetLocation is only meaningful for travel quests.
	TargetLocation *Position `json:"targetLocation,omitempty"`

	// TargetItems holds item names and is only meaningful for collection quests.
	TargetItems []string `json:"targetItems,omitempty"`

	Reward      []Item `json:"reward"`
	IsCompleted bool   `json:"isCompleted"`
}

// Satisfied reports whether p currently meets the quest's goal.
// A travel quest is reached once the target lies within the player's collision radius.
func (q *Quest) Satisfied(p *Player) bool {
	switch q.Type {
	case QuestTypeTravel:
		if q.TargetLocation == nil {
			return false
		}
		return p.Position.Distance(*q.TargetLocation) <= p.CollisionRadius
	case QuestTypeCollection:
		if len(q.TargetItems) == 0 {
			return false
		}
		for _, name := range q.TargetItems {
			i, ok := p.FindItem(name)
			if !ok || p.Inventory[i].Quantity <= 0 {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Validate checks that the target matching the quest type is present.
func (q *Quest) Validate() error {
	el := errors.NewErrorList()

	if q.Name == "" {
		el.Add(fmt.Errorf("quest name is required"))
	}

	switch q.Type {
	case QuestTypeTravel:
		if q.TargetLocation == nil {
			el.Add(fmt.Errorf("travel quest %q requires a target location", q.Name))
		}
	case QuestTypeCollection:
		if len(q.TargetItems) == 0 {
			el.Add(fmt.Errorf("collection quest %q requires target items", q.Name))
		}
	default:
		el.Add(fmt.Errorf("%w: %d", ErrUnknownQuestType, int(q.Type)))
	}

	for i := range q.Reward {
		el.Add(q.Reward[i].Validate())
	}

	return el.Err()
}
