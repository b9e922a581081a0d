package repo

import (
	"context"
	"maps"
)

// CardTable - источник сырых строк карт по имени владельца. Только чтение.
type CardTable interface {
	// Raw возвращает сырую строку карты для name; ok=false, если записи нет.
	Raw(ctx context.Context, name string) (raw string, ok bool, err error)
}

// DefaultCards returns the fixed card fixture the program starts with.
func DefaultCards() map[string]string {
	return map[string]string{
		"Amy": "1234567 04 123",    // не хватает поля
		"Tim": "1234567 04 05 123", // корректная карта
		"Bob": "123A567 04 05 123", // некорректный номер
	}
}

// StaticTable is an immutable in-memory CardTable.
type StaticTable struct {
	cards map[string]string
}

var _ CardTable = (*StaticTable)(nil)

// NewStaticTable копирует cards, чтобы внешние изменения map не влияли на таблицу.
func NewStaticTable(cards map[string]string) *StaticTable {
	return &StaticTable{cards: maps.Clone(cards)}
}

func (t *StaticTable) Raw(_ context.Context, name string) (string, bool, error) {
	raw, ok := t.cards[name]
	return raw, ok, nil
}
