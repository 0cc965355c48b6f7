package game

import "errors"

var (
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerDead           = errors.New("player is dead")
	ErrItemNotFound         = errors.New("item not found")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrQuestNotFound        = errors.New("quest not found")
	ErrUnknownEffect        = errors.New("unknown effect kind")
	ErrUnknownStat          = errors.New("unknown stat")
	ErrUnknownItemType      = errors.New("unknown item type")
	ErrUnknownQuestType     = errors.New("unknown quest type")
)
