package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cardlookup/internal/cardinfo"
	"cardlookup/internal/cli/bootstrap"
	"cardlookup/internal/cli/commands"
	"cardlookup/internal/config"
	"cardlookup/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// некорректные настройки не останавливают программу: NewConfig подставляет дефолты
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v; using defaults\n", err)
	}

	// создаём регистратор zap по настройкам из окружения
	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logger: %v; logging disabled\n", err)
		zl = zap.NewNop()
	}
	sugar := zl.Sugar()
	// сброс буфера логгера; ошибки Sync для stderr игнорируем
	defer func() { _ = zl.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	table, done, err := bootstrap.OpenCardTable(ctx, cfg)
	if err != nil {
		sugar.Warnw("failed to open card table, falling back to memory", "store", cfg.CardStore, "error", err)
		table, done, _ = bootstrap.OpenCardTable(ctx, config.Default())
	}
	defer func() {
		if err := done(); err != nil {
			sugar.Warnw("failed to close card table", "error", err)
		}
	}()

	if err := commands.Lookup(ctx, table, sugar); err != nil {
		// чтение stdin не удалось, завершаемся с ненулевым кодом
		sugar.Fatalw("Failed to read line", "error", cardinfo.FormatChain(err))
	}
}
