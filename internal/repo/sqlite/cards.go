// Package sqlite keeps the card table in a private in-memory SQLite database.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"cardlookup/internal/repo"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// CardRow - строка таблицы cards.
type CardRow struct {
	Name string `gorm:"primaryKey"`
	Raw  string `gorm:"not null"`
}

func (CardRow) TableName() string { return "cards" }

// CardTable реализует repo.CardTable поверх in-memory SQLite (modernc, без cgo).
type CardTable struct {
	db *gorm.DB
}

var _ repo.CardTable = (*CardTable)(nil)

var dbSeq atomic.Uint64

// Open creates a fresh in-memory database, migrates it and seeds it with cards.
// Every call gets its own database; nothing is written to disk.
func Open(ctx context.Context, cards map[string]string) (*CardTable, error) {
	// именованная shared-cache БД живёт, пока открыто хотя бы одно соединение
	dsn := fmt.Sprintf("file:cards%d?mode=memory&cache=shared", dbSeq.Add(1))
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t := &CardTable{db: db}
	if err := db.WithContext(ctx).AutoMigrate(&CardRow{}); err != nil {
		_ = t.Close()
		return nil, fmt.Errorf("migrate cards: %w", err)
	}
	if len(cards) > 0 {
		rows := make([]CardRow, 0, len(cards))
		for name, raw := range cards {
			rows = append(rows, CardRow{Name: name, Raw: raw})
		}
		if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
			_ = t.Close()
			return nil, fmt.Errorf("seed cards: %w", err)
		}
	}
	return t, nil
}

// Close закрывает соединение; данные при этом исчезают.
func (t *CardTable) Close() error {
	if t == nil || t.db == nil {
		return nil
	}
	sqlDB, err := t.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (t *CardTable) Raw(ctx context.Context, name string) (string, bool, error) {
	var row CardRow
	err := t.db.WithContext(ctx).Where("name = ?", name).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Raw, true, nil
}
