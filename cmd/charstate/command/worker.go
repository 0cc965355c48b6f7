package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-charstate/internal/game"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	cat, err := cfg.Catalog.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	slog.Info("catalog loaded", "items", len(cat.ItemIds()), "quests", len(cat.QuestIds()))

	registry := game.NewRegistry(
		game.WithStartingPatch(cfg.Start.Patch()),
		game.WithRegistryLogger(slog.Default()),
	)
	for _, p := range cfg.Players {
		if _, err := p.BuildPlayer(registry, cat); err != nil {
			return nil, fmt.Errorf("creating players: %w", err)
		}
	}

	return service.WorkerList{
		"registry": registry,
	}, nil
}
