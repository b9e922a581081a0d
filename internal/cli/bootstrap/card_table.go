package bootstrap

import (
	"context"
	"fmt"

	"cardlookup/internal/config"
	"cardlookup/internal/repo"
	reposqlite "cardlookup/internal/repo/sqlite"
)

// OpenCardTable открывает таблицу карт выбранного в конфиге бэкенда, заполненную
// фиксированным набором карт, и возвращает (table, cleanup, error).
// cleanup нужно вызвать по завершении работы с таблицей.
func OpenCardTable(ctx context.Context, cfg *config.Config) (repo.CardTable, func() error, error) {
	cards := repo.DefaultCards()
	switch cfg.CardStore {
	case config.StoreMemory, "":
		return repo.NewStaticTable(cards), func() error { return nil }, nil
	case config.StoreSQLite:
		t, err := reposqlite.Open(ctx, cards)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite card table: %w", err)
		}
		return t, t.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown card store %q", cfg.CardStore)
	}
}
