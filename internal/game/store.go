package game

import "log/slog"

// Store owns a single live player record. It is built by the application and
// passed to whatever needs the player; there is no package-level instance.
//
// A Store does no locking. Callers touching one Store from several goroutines
// must serialise access themselves (Registry does this for the stores it holds).
type Store struct {
	player *Player
	logger *slog.Logger
}

type StoreOpt func(*Store)

// WithPlayer seeds the store with p instead of a default player.
func WithPlayer(p *Player) StoreOpt {
	return func(s *Store) {
		s.player = p
	}
}

// WithLogger sets the logger used to record applied updates.
func WithLogger(l *slog.Logger) StoreOpt {
	return func(s *Store) {
		s.logger = l
	}
}

func NewStore(opts ...StoreOpt) *Store {
	s := &Store{
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.player == nil {
		s.player = NewPlayer()
	}

	return s
}

// Player returns the live record. Changes made through it are visible to
// every holder of the store.
func (s *Store) Player() *Player {
	return s.player
}

// Update shallow-merges pt into the player. Fields absent from pt keep their
// current values. Values are not range checked; see Patch.Validate.
func (s *Store) Update(pt Patch) error {
	fields, err := pt.ApplyTo(s.player)
	if len(fields) > 0 {
		s.logger.Debug("player updated", "name", s.player.Name, "fields", fields)
	}
	return err
}
